package store

import "fitmatch_server/models"

// SeedSampleUsers populates the store with the fixed set of sample profiles
// the app ships with. Called once at startup; tests start from an empty
// store instead.
func (s *MemoryStore) SeedSampleUsers() {
	sampleUsers := []models.CreateUserInput{
		{
			Name:          "Alex Johnson",
			Email:         "alex@example.com",
			Age:           "26",
			Bio:           "Looking for a workout buddy to push each other to the limit! Love strength training and cardio.",
			Location:      "2.3 miles away",
			ProfilePhoto:  "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			WorkoutTypes:  []string{"Strength Training", "Cardio"},
			PreferredTime: "Morning",
			IsOnline:      true,
		},
		{
			Name:          "Sarah Chen",
			Email:         "sarah@example.com",
			Age:           "24",
			Bio:           "Yoga enthusiast seeking mindful workout partners. Love combining strength with flexibility training.",
			Location:      "1.8 miles away",
			ProfilePhoto:  "https://images.unsplash.com/photo-1494790108755-2616b612b8a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			WorkoutTypes:  []string{"Yoga", "Pilates"},
			PreferredTime: "Evening",
			IsOnline:      false,
		},
		{
			Name:          "Mike Rodriguez",
			Email:         "mike@example.com",
			Age:           "29",
			Bio:           "Marathon runner training for Boston. Looking for dedicated running partners who love early morning sessions.",
			Location:      "3.1 miles away",
			ProfilePhoto:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			WorkoutTypes:  []string{"Running", "Endurance"},
			PreferredTime: "Morning",
			IsOnline:      true,
		},
		{
			Name:          "Emma Thompson",
			Email:         "emma@example.com",
			Age:           "28",
			Bio:           "CrossFit athlete and personal trainer. Love high-intensity workouts and helping others reach their fitness goals!",
			Location:      "1.2 miles away",
			ProfilePhoto:  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			WorkoutTypes:  []string{"CrossFit", "HIIT", "Weight Training"},
			PreferredTime: "Any Time",
			IsOnline:      true,
		},
	}

	for _, user := range sampleUsers {
		s.CreateUser(user)
	}
}
