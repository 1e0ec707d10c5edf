// Package model contains domain models/data structures.
// Types here carry no persistence tags and no business logic beyond
// closed-enumeration membership checks.
package model
