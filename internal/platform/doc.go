package platform

// Package platform contains network and content glue for the views: product
// image fetching with an in-memory cache, and turning product HTML
// descriptions into plain text.
