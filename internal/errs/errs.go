// Package errs defines the error shapes returned to API clients.
//
// Every failure the service reports, whether a missing signup field or an
// unexpected collaborator fault, is expressed as an *HTTPError so clients
// receive one consistent JSON structure.
package errs
