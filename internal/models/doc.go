// Package models defines the domain models for the SafeForHall residents service.
//
// # Models
//
//   - Person: a hall resident, identified by room and name
//   - Event: a scheduled event with a capacity and a resident list
//   - User: an operator account allowed to manage the hall
//
// # Design Principles
//
//  1. Events are values: including residents builds a new Event, and the
//     store swaps it in by ID.
//  2. An event's members are held as a resident.List; its display and
//     storage strings are derived, never stored independently in memory.
//  3. Relationships use ID strings instead of pointers.
package models
