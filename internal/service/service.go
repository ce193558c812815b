// Package service contains the business logic.
//
// It sits between the handler and repository layers. Controllers call into
// it through small interfaces; it calls repository methods to persist data
// and the job client to schedule follow-up work.
package service
