// Package controller holds the transport-agnostic request controllers.
//
// A controller receives a generic Request (a bag of named fields), runs its
// validation sequence, delegates side effects to injected collaborators and
// normalizes every outcome into a Response. It never returns an error and
// never panics; the handler package adapts it to Echo.
package controller
