// Package mocks holds the static seed collections that stand in for a
// database. Repositories clone these at construction; the seeds themselves
// are never mutated at runtime.
package mocks

import "github.com/soireehq/soiree-api/internal/models"

// DefaultAvatar is assigned to accounts created through signup.
const DefaultAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"

var Users = []models.User{
	{
		ID:         "1",
		Name:       "Alex Johnson",
		Email:      "alex@example.com",
		Avatar:     DefaultAvatar,
		Bio:        "Adventurous couple looking for fun experiences",
		Rating:     4.8,
		IsHost:     true,
		JoinedDate: "2023-01-15",
		Preferences: &models.Preferences{
			Notifications: true,
			DarkMode:      false,
			Language:      "en",
		},
	},
	{
		ID:         "2",
		Name:       "Jamie & Sam",
		Email:      "jamie.sam@example.com",
		Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Bio:        "Fun-loving couple from NYC",
		Rating:     4.5,
		IsHost:     false,
		JoinedDate: "2023-03-22",
	},
	{
		ID:         "3",
		Name:       "Taylor Smith",
		Email:      "taylor@example.com",
		Avatar:     "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Bio:        "Event organizer with 5+ years of experience",
		Rating:     4.9,
		IsHost:     true,
		JoinedDate: "2022-11-05",
	},
}

// CurrentUser is the account social login always resolves to.
var CurrentUser = Users[0]
