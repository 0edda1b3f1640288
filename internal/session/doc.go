// Package session tracks who is logged in. The bearer token and the user
// profile are mirrored into the persistence port so a restart keeps the
// shopper signed in.
package session
