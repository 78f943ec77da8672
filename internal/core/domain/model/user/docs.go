// Package user provides the read model of the external user directory: roles,
// account statuses, delivery-worker area restrictions, and the authenticated
// Caller identity threaded through every workflow operation.
//
// The workflow treats the directory as a read-only collaborator. Profile
// management, authentication, and account lifecycle live outside this service.
package user
