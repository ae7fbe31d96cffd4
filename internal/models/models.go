package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a club member account. Password holds the bcrypt hash and
// is never serialized into responses.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	Privacy        string             `bson:"privacy" json:"privacy"`
}

// Privacy values for users and media.
const (
	PrivacyPublic      = "public"
	PrivacyMembersOnly = "members_only"
)

// Event represents a club event. Date is free text as entered by the client.
type Event struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Date     string             `bson:"date" json:"date"`
	Location string             `bson:"location" json:"location"`
	Agenda   string             `bson:"agenda" json:"agenda"`
}

// Media represents an uploaded photo or video. EventID and AlbumID are
// opaque passthrough strings; media sharing an AlbumID form a client-side
// album, not a stored entity.
type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Description string             `bson:"description" json:"description"`
	URL         string             `bson:"url" json:"url"`
	EventID     string             `bson:"event_id,omitempty" json:"event_id,omitempty"`
	Privacy     string             `bson:"privacy" json:"privacy"`
	AlbumID     string             `bson:"albumId,omitempty" json:"albumId,omitempty"`
}

// Tip represents a piece of advice posted by a member.
type Tip struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Category string             `bson:"category" json:"category"`
	Content  string             `bson:"content" json:"content"`
}

// Message represents one entry in the club chat feed. User is a display
// name, not a reference. Timestamp is assigned by the server at creation.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      string             `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
