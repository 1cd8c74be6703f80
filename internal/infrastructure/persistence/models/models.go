// Package models contains the gorm persistence models. Relationship fields
// exist only to declare foreign keys for AutoMigrate and are never preloaded.
package models

// All returns every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&TicketModel{},
		&ReviewModel{},
		&CommentModel{},
		&FollowEdgeModel{},
	}
}
