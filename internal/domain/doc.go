// Package domain defines the data models and interfaces shared across
// numconv: the representation labels, the request/result envelope, and the
// Converter/Client contracts. It contains plain types and interfaces only.
package domain
