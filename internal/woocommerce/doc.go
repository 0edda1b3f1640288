package woocommerce

// Package woocommerce is the storefront's gateway to the shop's REST API. It
// signs catalog and order calls with one-legged OAuth 1.0a (HMAC-SHA1, no token
// secret), authenticates shoppers through the JWT token endpoint, and maps
// transport and HTTP failures onto a small error taxonomy.
