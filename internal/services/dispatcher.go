package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/models"
)

// DispatcherService runs the bulk application loop: one send attempt per
// job, strictly sequential, input order preserved. A job's failure is
// captured in its DispatchResult and never aborts the batch.
type DispatcherService interface {
	Dispatch(ctx context.Context, jobs []models.JobListing, profile models.CandidateProfile) (models.DispatchSummary, []models.DispatchResult)
}

type dispatcherService struct {
	composer ComposerService
	mailer   Mailer
	intro    IntroGenerator // optional, may be nil
	from     string
	logger   *zap.Logger
}

func NewDispatcherService(
	composer ComposerService,
	mailer Mailer,
	intro IntroGenerator,
	from string,
	logger *zap.Logger,
) DispatcherService {
	return &dispatcherService{
		composer: composer,
		mailer:   mailer,
		intro:    intro,
		from:     from,
		logger:   logger,
	}
}

// Dispatch implements DispatcherService.
func (d *dispatcherService) Dispatch(ctx context.Context, jobs []models.JobListing, profile models.CandidateProfile) (models.DispatchSummary, []models.DispatchResult) {
	attachments := d.buildAttachments(profile)
	results := make([]models.DispatchResult, 0, len(jobs))

	for _, job := range jobs {
		website := ""
		if job.EmployerWebsite != nil {
			website = *job.EmployerWebsite
		}

		sentTo := d.composer.DeriveEmployerEmail(job.EmployerName, website)
		if sentTo == "" {
			// No plausible employer mailbox; fall back to the applicant's
			// own address so the send always has a destination.
			sentTo = profile.Email
		}

		msg := &EmailMessage{
			From:        d.from,
			To:          sentTo,
			ReplyTo:     profile.Email,
			Subject:     d.composer.Subject(job.JobTitle, profile.Name),
			HTML:        d.composer.BuildHTML(profile, job.JobTitle, job.EmployerName, d.generateIntro(ctx, profile, job)),
			Attachments: attachments,
		}

		result := models.DispatchResult{
			JobID:        job.JobID,
			JobTitle:     job.JobTitle,
			EmployerName: job.EmployerName,
			ApplyLink:    job.JobApplyLink,
			SentTo:       sentTo,
		}

		emailID, err := d.mailer.Send(ctx, msg)
		if err != nil {
			d.logger.Warn("email send failed",
				zap.String("employer", job.EmployerName),
				zap.String("job_id", job.JobID),
				zap.Error(err),
			)
			result.Status = models.StatusFailed
			result.Message = fmt.Sprintf("Failed to send email: %v", err)
		} else {
			result.Status = models.StatusSent
			result.EmailID = emailID
			result.Message = fmt.Sprintf("Application email sent to %s", sentTo)
		}

		results = append(results, result)
	}

	summary := models.DispatchSummary{
		Total:     len(jobs),
		Applicant: profile.Name,
	}
	for _, r := range results {
		if r.Status == models.StatusSent {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	return summary, results
}

// generateIntro returns the personalized opening paragraph, or "" so the
// composer falls back to the static template. AI failures must never
// fail a send.
func (d *dispatcherService) generateIntro(ctx context.Context, profile models.CandidateProfile, job models.JobListing) string {
	if d.intro == nil {
		return ""
	}

	intro, err := d.intro.Generate(ctx, profile, job)
	if err != nil {
		d.logger.Warn("intro generation failed, using template",
			zap.String("job_id", job.JobID),
			zap.Error(err),
		)
		return ""
	}
	return intro
}

func (d *dispatcherService) buildAttachments(profile models.CandidateProfile) []EmailAttachment {
	if profile.CVFileBase64 == "" {
		return nil
	}

	content, err := base64.StdEncoding.DecodeString(profile.CVFileBase64)
	if err != nil {
		d.logger.Warn("invalid CV attachment payload, sending without attachment", zap.Error(err))
		return nil
	}

	filename := profile.CVFileName
	if filename == "" {
		filename = spaceRegex.ReplaceAllString(profile.Name, "_") + "_CV.pdf"
	}

	return []EmailAttachment{{Filename: filename, Content: content}}
}
