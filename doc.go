/*
	Project: Portal, a school portal for administrators, faculty and students.
*/

// Package portal keeps the records of a school: students, faculty, subjects,
// attendance, marks and announcements.
//
// Every collection lives under one key of a store.KV (core/store) as a JSON array,
// which can be kept in memory, in SQLite or PostgreSQL, or in Redis (storage/kv).
// apps/portal is the command line of the three roles.
package portal
