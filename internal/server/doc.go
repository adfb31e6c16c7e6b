// Package server implements the HTTP server for the Battleship game.
// It registers the routes served by internal/api, guards them with JWT
// auth and a per-IP rate limit, and renders errors as JSON. Game state and
// its locking live in internal/service and internal/model.
//
package server
