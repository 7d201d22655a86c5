// Package domain defines the core business entities and rules of the
// task management system: users, projects, tasks, and the task status
// lifecycle. Entities validate themselves; persistence and transport
// concerns live elsewhere.
package domain
