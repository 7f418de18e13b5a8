// Package sandbox implements the business rules of the local feedback API:
// customer registration with survey links, one-shot token redemption, and the
// read-only dashboard listings.
//
// It stands in for the hosted backend during development. Survey emails are
// written to the log instead of being sent, and sentiment and summaries are
// derived from the star rating.
package sandbox
