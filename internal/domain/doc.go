// Package domain contains the core business entities of the application,
// the Todo and Book records, together with the field rules every incoming
// payload must satisfy before it reaches a store. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
