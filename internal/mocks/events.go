package mocks

import "github.com/soireehq/soiree-api/internal/models"

var Events = []models.Event{
	{
		ID:          "1",
		Title:       "Summer Night Soiree",
		Description: "An exclusive rooftop party with panoramic city views, live DJ sets and an open bar until late. Dress to impress.",
		Date:        "2025-06-15",
		Time:        "21:00 - 03:00",
		Location: models.Location{
			Name:    "Skyline Penthouse",
			Address: "1100 Biscayne Blvd",
			City:    "Miami",
			State:   "FL",
			Country: "USA",
			Coordinates: models.Coordinates{
				Latitude:  25.7847,
				Longitude: -80.1867,
			},
		},
		Price:      150,
		Capacity:   120,
		Attendees:  87,
		HostID:     "1",
		HostName:   "Alex Johnson",
		HostRating: 4.8,
		Images: []string{
			"https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
			"https://images.unsplash.com/photo-1514525253161-7a46d19cd819?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
		},
		IsFree:    false,
		IsPrivate: true,
		Tags:      []string{"nightlife", "rooftop", "cocktails"},
		Rating:    4.7,
		Reviews: []models.Review{
			{
				ID:         "1",
				UserID:     "2",
				UserName:   "Jamie & Sam",
				UserAvatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				Rating:     5,
				Comment:    "Incredible views and an even better crowd. We will be back!",
				Date:       "2024-06-20",
			},
		},
	},
	{
		ID:          "2",
		Title:       "Masquerade Mystery",
		Description: "A masked evening in a hidden garden venue. Theatrical performances, signature cocktails and a midnight reveal.",
		Date:        "2025-07-22",
		Time:        "22:00 - 04:00",
		Location: models.Location{
			Name:    "The Secret Garden",
			Address: "742 Hidden Grove Ln",
			City:    "Los Angeles",
			State:   "CA",
			Country: "USA",
			Coordinates: models.Coordinates{
				Latitude:  34.0522,
				Longitude: -118.2437,
			},
		},
		Price:      200,
		Capacity:   80,
		Attendees:  54,
		HostID:     "3",
		HostName:   "Taylor Smith",
		HostRating: 4.9,
		Images: []string{
			"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
		},
		IsFree:    false,
		IsPrivate: true,
		Tags:      []string{"masquerade", "theatrical", "exclusive"},
		Rating:    4.9,
		Reviews: []models.Review{
			{
				ID:         "2",
				UserID:     "1",
				UserName:   "Alex Johnson",
				UserAvatar: DefaultAvatar,
				Rating:     5,
				Comment:    "Taylor knows how to throw a party. The reveal was unforgettable.",
				Date:       "2024-07-28",
			},
			{
				ID:         "3",
				UserID:     "2",
				UserName:   "Jamie & Sam",
				UserAvatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				Rating:     4.5,
				Comment:    "Gorgeous venue, though the bar queue got long after midnight.",
				Date:       "2024-07-29",
			},
		},
	},
	{
		ID:          "3",
		Title:       "Beach Sunset Social",
		Description: "A relaxed evening on the sand with bonfires, acoustic music and new friends. Bring a blanket; drinks on us.",
		Date:        "2025-08-09",
		Time:        "18:00 - 23:00",
		Location: models.Location{
			Name:    "Crystal Cove",
			Address: "8471 N Coast Hwy",
			City:    "San Diego",
			State:   "CA",
			Country: "USA",
			Coordinates: models.Coordinates{
				Latitude:  32.7157,
				Longitude: -117.1611,
			},
		},
		Price:      0,
		Capacity:   200,
		Attendees:  143,
		HostID:     "3",
		HostName:   "Taylor Smith",
		HostRating: 4.9,
		Images: []string{
			"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
		},
		IsFree:    true,
		IsPrivate: false,
		Tags:      []string{"beach", "bonfire", "casual"},
		Rating:    4.6,
		Reviews:   []models.Review{},
	},
	{
		ID:          "4",
		Title:       "Vineyard Jazz Evening",
		Description: "Live jazz quartet among the vines, with tastings from the estate cellar and a long-table dinner at dusk.",
		Date:        "2025-09-13",
		Time:        "17:30 - 22:30",
		Location: models.Location{
			Name:    "Willow Creek Estate",
			Address: "2205 Vineyard Rd",
			City:    "Austin",
			State:   "TX",
			Country: "USA",
			Coordinates: models.Coordinates{
				Latitude:  30.2672,
				Longitude: -97.7431,
			},
		},
		Price:      95,
		Capacity:   60,
		Attendees:  38,
		HostID:     "1",
		HostName:   "Alex Johnson",
		HostRating: 4.8,
		Images: []string{
			"https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
		},
		IsFree:    false,
		IsPrivate: false,
		Tags:      []string{"jazz", "wine", "dinner"},
		Rating:    4.8,
		Reviews:   []models.Review{},
	},
	{
		ID:          "5",
		Title:       "Warehouse Art Rave",
		Description: "Immersive light installations, three rooms of sound and a pop-up gallery from local artists. Free entry before 22:00.",
		Date:        "2025-06-28",
		Time:        "21:00 - 05:00",
		Location: models.Location{
			Name:    "The Foundry",
			Address: "19 Meadow St",
			City:    "Brooklyn",
			State:   "NY",
			Country: "USA",
			Coordinates: models.Coordinates{
				Latitude:  40.7128,
				Longitude: -73.9352,
			},
		},
		Price:      0,
		Capacity:   350,
		Attendees:  210,
		HostID:     "3",
		HostName:   "Taylor Smith",
		HostRating: 4.9,
		Images: []string{
			"https://images.unsplash.com/photo-1470225620780-dba8ba36b745?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80",
		},
		IsFree:    true,
		IsPrivate: false,
		Tags:      []string{"art", "rave", "nightlife"},
		Rating:    4.4,
		Reviews:   []models.Review{},
	},
}
