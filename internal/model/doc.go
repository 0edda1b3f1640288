package model

// Package model defines the storefront's data structures: catalog products and
// cart lines, shopper profiles, orders, and the checkout form. Field names and
// JSON tags follow the WooCommerce REST wire format so the same values can be
// decoded from the API and mirrored into local storage unchanged.
