package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"estatehub/database"
	"estatehub/database/query"
	contactRepo "estatehub/database/repository/contact"
	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Message length bounds, counted after trimming.
const (
	minMessageLen = 10
	maxMessageLen = 1000
)

func notFoundAs(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return utils.NotFound(resource)
	}
	return utils.AsAppError(err)
}

func optionalID(raw, field string) (*primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, utils.Validation("Validation failed").
			WithDetails([]utils.FieldError{{Field: field, Message: "must be a valid id"}})
	}
	return &id, nil
}

// Submit classifies and stores a public inquiry. Classification runs
// here and nowhere else.
func (s *DefaultContactService) Submit(ctx context.Context, req SubmitRequest, meta RequestMeta) (*models.Contact, error) {
	message := strings.TrimSpace(req.Message)
	if n := utf8.RuneCountInString(message); n < minMessageLen || n > maxMessageLen {
		return nil, utils.Validation("Validation failed").WithDetails([]utils.FieldError{{
			Field:   "message",
			Message: fmt.Sprintf("must be between %d and %d characters", minMessageLen, maxMessageLen),
		}})
	}
	propertyID, err := optionalID(req.Property, "property")
	if err != nil {
		return nil, err
	}
	serviceID, err := optionalID(req.Service, "service")
	if err != nil {
		return nil, err
	}
	if propertyID != nil {
		if _, err := s.Properties.GetByID(ctx, *propertyID); err != nil {
			return nil, notFoundAs("Property", err)
		}
	}
	if serviceID != nil {
		if _, err := s.Services.GetByID(ctx, *serviceID); err != nil {
			return nil, notFoundAs("Service", err)
		}
	}

	class := Classify(ClassificationInput{
		Message:  message,
		Subject:  req.Subject,
		Priority: req.Priority,
		Tags:     req.Tags,
	})

	channel := req.PreferredContact
	if channel == "" {
		channel = models.ChannelEmail
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "website"
	}

	c := &models.Contact{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		Subject:          strings.TrimSpace(req.Subject),
		Message:          message,
		Property:         propertyID,
		Service:          serviceID,
		PreferredContact: channel,
		Status:           models.ContactPending,
		Priority:         class.Priority,
		Tags:             class.Tags,
		Source:           source,
		IPAddress:        meta.IPAddress,
		UserAgent:        meta.UserAgent,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, utils.AsAppError(err)
	}

	if serviceID != nil {
		if err := s.Services.IncrementInquiries(ctx, *serviceID); err != nil {
			utils.GetLogger().Warn("Failed to count service inquiry", zap.String("service", serviceID.Hex()), zap.Error(err))
		}
	}
	utils.GetLogger().Info("Contact submitted",
		zap.String("id", c.ID.Hex()), zap.String("priority", string(c.Priority)), zap.Strings("tags", c.Tags))
	return c, nil
}

func (s *DefaultContactService) List(ctx context.Context, params query.ContactParams, sort bson.D, w query.Window) (query.Page[models.Contact], error) {
	if sort == nil {
		sort = query.ContactSort.Default()
	}
	page, err := s.Repo.FindPage(ctx, query.BuildContactFilter(params), sort, w)
	if err != nil {
		return query.Page[models.Contact]{}, notFoundAs("Contact", err)
	}
	return page, nil
}

func (s *DefaultContactService) Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs("Contact", err)
	}
	return c, nil
}

// Update applies staff edits. respondedAt is stamped the first time the
// inquiry moves into contacted and never changes afterwards.
func (s *DefaultContactService) Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*models.Contact, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs("Contact", err)
	}

	if req.Status != nil {
		if *req.Status == models.ContactContacted && c.Status != models.ContactContacted && c.RespondedAt == nil {
			now := s.now().UTC()
			c.RespondedAt = &now
		}
		c.Status = *req.Status
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.Tags != nil {
		c.Tags = dedupeTags(*req.Tags)
	}
	if req.Notes != nil {
		c.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.AssignedTo != nil {
		assignee, err := optionalID(*req.AssignedTo, "assignedTo")
		if err != nil {
			return nil, err
		}
		c.AssignedTo = assignee
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, notFoundAs("Contact", err)
	}
	return c, nil
}

func (s *DefaultContactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundAs("Contact", s.Repo.Delete(ctx, id))
}

func (s *DefaultContactService) Stats(ctx context.Context) (*contactRepo.Stats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, utils.AsAppError(err)
	}
	return stats, nil
}

func dedupeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
