// Package services contains the application services of pdfvoice:
//
//   - AuthService: the credential store (registration and login checks).
//   - LibraryService: the per-user registry of uploaded PDF paths.
//
// Services own no connection state beyond the shared *sql.DB; every operation
// is a short synchronous call that runs its statements in a single implicit
// or explicit transaction and returns.
package services
