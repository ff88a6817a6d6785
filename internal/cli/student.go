package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/store"
)

const dateFormat = "Jan 2, 2006"

// Jobs prints every open posting, oldest first. A logged-in student sees an
// "applied" marker next to positions they already claimed.
func (a *App) Jobs(_ context.Context) error {
	jobs := a.store.ListJobs()
	if len(jobs) == 0 {
		fmt.Println("No job opportunities available at the moment. Check back soon!")
		return nil
	}

	for _, j := range jobs {
		marker := ""
		if a.current != nil && a.current.Role == store.RoleStudent && a.store.HasApplied(a.current.ID, j.ID) {
			marker = "  [applied]"
		}
		fmt.Printf("%s - %s (%s)%s\n", j.ID, j.Title, j.Type, marker)
		if j.Description != "" {
			fmt.Printf("    %s\n", j.Description)
		}
		fmt.Printf("    Pay: %s | Skills: %s | Posted: %s by %s\n",
			j.Pay, j.Skills, j.PostedAt.Format(dateFormat), j.ProviderName)
	}
	return nil
}

// Apply prompts for a job id and records the student's application.
func (a *App) Apply(ctx context.Context) error {
	if a.current == nil || a.current.Role != store.RoleStudent {
		fmt.Println("Please login as a student to apply for jobs.")
		return nil
	}

	jobID, err := getSimpleText(a.reader, "Enter job id to apply for", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.store.CreateApplication(ctx, a.current.ID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyApplied):
			fmt.Println("You have already applied for this position!")
			return nil
		case errors.Is(err, common.ErrJobNotFound):
			fmt.Println("No such job. Use 'jobs' to see current openings.")
			return nil
		}
		return err
	}

	fmt.Println("Application submitted successfully!")
	return nil
}

// Profile prints the current user's account details.
func (a *App) Profile(_ context.Context) error {
	if a.current == nil {
		fmt.Println("Please login first.")
		return nil
	}

	u := a.current
	fmt.Printf("Name:          %s\n", u.Name)
	fmt.Printf("Email:         %s\n", u.Email)
	fmt.Printf("Role:          %s\n", u.Role)
	fmt.Printf("Member since:  %s\n", u.CreatedAt.Format(dateFormat))

	if u.Role == store.RoleStudent {
		jobsApplied := 0
		if u.JobsApplied != nil {
			jobsApplied = *u.JobsApplied
		}
		coursesEnrolled := 0
		if u.CoursesEnrolled != nil {
			coursesEnrolled = *u.CoursesEnrolled
		}
		fmt.Printf("Jobs applied:      %d\n", jobsApplied)
		fmt.Printf("Courses enrolled:  %d\n", coursesEnrolled)
		if len(u.Skills) > 0 {
			fmt.Printf("Skills:            %s\n", strings.Join(u.Skills, ", "))
		}
	}
	return nil
}
