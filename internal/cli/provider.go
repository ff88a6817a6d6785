package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/teenbridge/skillbridge/internal/store"
)

// requireProvider guards the provider-only commands.
func (a *App) requireProvider() bool {
	if a.current == nil || a.current.Role != store.RoleProvider {
		fmt.Println("Please login as a job provider to use this command.")
		return false
	}
	return true
}

// PostJob collects the posting fields and creates a new job owned by the
// current provider.
func (a *App) PostJob(ctx context.Context) error {
	if !a.requireProvider() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter job title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Println("A job title is required.")
		return nil
	}

	jobType, err := getSimpleText(a.reader, "Enter employment type (e.g. part-time)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}
	skills, err := getSimpleText(a.reader, "Enter required skills", os.Stdout)
	if err != nil {
		return err
	}
	pay, err := getSimpleText(a.reader, "Enter pay (e.g. $12/hour)", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.store.CreateJob(ctx, a.current.ID, a.current.Name, title, jobType, description, skills, pay)
	if err != nil {
		return err
	}

	fmt.Println("Job posted successfully!")
	return nil
}

// MyJobs lists the current provider's postings.
func (a *App) MyJobs(_ context.Context) error {
	if !a.requireProvider() {
		return nil
	}

	jobs := a.store.ListJobsByProvider(a.current.ID)
	if len(jobs) == 0 {
		fmt.Println("You haven't posted any jobs yet. Use 'post' to publish your first job!")
		return nil
	}

	for _, j := range jobs {
		fmt.Printf("%s - %s (%s)\n", j.ID, j.Title, j.Type)
		fmt.Printf("    Pay: %s | Skills: %s | Posted: %s\n", j.Pay, j.Skills, j.PostedAt.Format(dateFormat))
	}
	return nil
}

// DeleteJob removes one of the current provider's postings after a
// confirmation prompt. Applications for the posting are removed with it.
func (a *App) DeleteJob(ctx context.Context) error {
	if !a.requireProvider() {
		return nil
	}

	jobID, err := getSimpleText(a.reader, "Enter job id to delete", os.Stdout)
	if err != nil {
		return err
	}

	job, err := a.store.FindJob(jobID)
	if err != nil || job.ProviderID != a.current.ID {
		fmt.Println("No such job among your postings. Use 'myjobs' to list them.")
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q and all its applications? (y/N)", job.Title), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.store.DeleteJob(ctx, jobID); err != nil {
		return err
	}

	fmt.Println("Job deleted.")
	return nil
}

// Applicants lists every application targeting the provider's postings.
func (a *App) Applicants(_ context.Context) error {
	if !a.requireProvider() {
		return nil
	}

	apps := a.store.ListApplicationsForProvider(a.current.ID)
	if len(apps) == 0 {
		fmt.Println("No student applications yet. Students will appear here when they apply to your jobs.")
		return nil
	}

	for _, app := range apps {
		fmt.Printf("%s <%s>\n", app.StudentName, app.StudentEmail)
		fmt.Printf("    Applied for: %s | Applied on: %s\n", app.JobTitle, app.AppliedAt.Format(dateFormat))
	}
	return nil
}
