package storage

// Package storage is the local persistence port of the storefront: a small
// string key-value contract with JSON helpers, implemented over Fyne
// preferences, process memory, and Cloud Firestore.
