// Package repository contains data access layer abstractions.
// Implementations live in subpackages (static, postgres, sqlite) inside this directory.
package repository
