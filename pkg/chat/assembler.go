// Package chat relays a user's message, with dashboard context, to the model
// backend and turns every backend outcome into a renderable reply.
package chat

import "career-ai-be/internal/entity"

// Assemble builds the per-request context from the caller's latest dashboard
// state. It does no I/O; a nil snapshot is passed through as nil.
func Assemble(snapshot *entity.DashboardStats, learningHours float64) entity.ChatContext {
	return entity.ChatContext{
		DashboardSnapshot: snapshot,
		LearningHours:     learningHours,
	}
}
