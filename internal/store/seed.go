package store

import "context"

// SeedDemoData populates a fresh store with a small demo dataset: one
// student, one provider and one open posting. It is a no-op when any user
// account already exists.
func (s *Store) SeedDemoData(ctx context.Context) error {
	if !s.Empty() {
		return nil
	}

	now := s.nowFn()

	student := &User{
		ID:              "1",
		Name:            "Alice Johnson",
		Email:           "alice@example.com",
		Password:        "password123",
		Role:            RoleStudent,
		CreatedAt:       now,
		Skills:          []string{"Web Development", "Design"},
		JobsApplied:     new(int),
		CoursesEnrolled: new(int),
	}
	*student.CoursesEnrolled = 2

	provider := &User{
		ID:        "2",
		Name:      "Tech Startup Inc",
		Email:     "jobs@techstartup.com",
		Password:  "password123",
		Role:      RoleProvider,
		CreatedAt: now,
	}

	job := &Job{
		ID:           "1",
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Title:        "Social Media Assistant",
		Type:         "part-time",
		Description:  "Help manage our social media accounts and create engaging content for our teenage audience.",
		Skills:       "Social Media, Content Creation, Communication",
		Pay:          "$12/hour",
		PostedAt:     now,
	}

	s.state.Users = append(s.state.Users, student, provider)
	s.state.Jobs = append(s.state.Jobs, job)

	if err := s.Save(ctx); err != nil {
		return err
	}

	s.log.Info(ctx, "demo data seeded", "users", 2, "jobs", 1)
	return nil
}
