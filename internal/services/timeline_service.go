package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrTimelineEntryNotFound = errors.New("timeline entry not found")
	ErrAttachmentNotFound    = errors.New("timeline attachment not found")
	ErrProviderNotFound      = errors.New("provider not found")
	ErrTimelineSaveFailed    = errors.New("save timeline entry failed")
)

type TimelineStore interface {
	CreateEntry(entry *models.TimelineEntry) error
	SaveEntry(entry *models.TimelineEntry) error
	FindEntryByUserAndID(userID uint, entryID uint) (models.TimelineEntry, bool, error)
	ListEntries(userID uint) ([]models.TimelineEntry, error)
	ListEntriesRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.TimelineEntry, error)
	DeleteEntry(userID uint, entryID uint) error
	CreateAttachment(attachment *models.TimelineAttachment) error
	FindAttachmentByUserAndID(userID uint, attachmentID uint) (models.TimelineAttachment, bool, error)
	DeleteAttachment(attachmentID uint) error
	CreateProvider(provider *models.Provider) error
	SaveProvider(provider *models.Provider) error
	FindProviderByUserAndID(userID uint, providerID uint) (models.Provider, bool, error)
	ListProviders(userID uint) ([]models.Provider, error)
	DeleteProvider(userID uint, providerID uint) error
}

type TimelineService struct {
	store    TimelineStore
	location *time.Location
	now      func() time.Time
}

func NewTimelineService(store TimelineStore, location *time.Location) *TimelineService {
	return &TimelineService{
		store:    store,
		location: location,
		now:      time.Now,
	}
}

type TimelineEntryInput struct {
	Date        time.Time
	Title       string
	Kind        string
	Status      string
	ProviderID  *uint
	Description string
}

// CreateEntry stores a journal event with its status derived from the
// date unless the caller cancelled it.
func (service *TimelineService) CreateEntry(userID uint, payload TimelineEntryInput) (models.TimelineEntry, error) {
	entry := models.TimelineEntry{
		UserID:      userID,
		Date:        DateAtLocation(payload.Date, service.location),
		Title:       payload.Title,
		Kind:        payload.Kind,
		Status:      payload.Status,
		ProviderID:  payload.ProviderID,
		Description: payload.Description,
	}
	entry.Status = DeriveTimelineStatus(entry.Status, entry.Date, service.now(), service.location)
	if err := service.store.CreateEntry(&entry); err != nil {
		return models.TimelineEntry{}, ErrTimelineSaveFailed
	}
	return entry, nil
}

// UpdateEntry re-derives status on every save; cancelled stays put.
func (service *TimelineService) UpdateEntry(userID uint, entryID uint, payload TimelineEntryInput) (models.TimelineEntry, error) {
	entry, found, err := service.store.FindEntryByUserAndID(userID, entryID)
	if err != nil {
		return models.TimelineEntry{}, err
	}
	if !found {
		return models.TimelineEntry{}, ErrTimelineEntryNotFound
	}
	entry.Date = DateAtLocation(payload.Date, service.location)
	entry.Title = payload.Title
	entry.Kind = payload.Kind
	entry.ProviderID = payload.ProviderID
	entry.Description = payload.Description
	if payload.Status == models.TimelineCancelled {
		entry.Status = models.TimelineCancelled
	}
	entry.Status = DeriveTimelineStatus(entry.Status, entry.Date, service.now(), service.location)
	if err := service.store.SaveEntry(&entry); err != nil {
		return models.TimelineEntry{}, ErrTimelineSaveFailed
	}
	return entry, nil
}

func (service *TimelineService) FetchEntry(userID uint, entryID uint) (models.TimelineEntry, error) {
	entry, found, err := service.store.FindEntryByUserAndID(userID, entryID)
	if err != nil {
		return models.TimelineEntry{}, err
	}
	if !found {
		return models.TimelineEntry{}, ErrTimelineEntryNotFound
	}
	return entry, nil
}

func (service *TimelineService) FetchEntries(userID uint) ([]models.TimelineEntry, error) {
	return service.store.ListEntries(userID)
}

func (service *TimelineService) DeleteEntry(userID uint, entryID uint) error {
	if _, err := service.FetchEntry(userID, entryID); err != nil {
		return err
	}
	return service.store.DeleteEntry(userID, entryID)
}

func (service *TimelineService) AttachFile(userID uint, entryID uint, fileName string, storedName string, fileSize int64) (models.TimelineAttachment, error) {
	entry, err := service.FetchEntry(userID, entryID)
	if err != nil {
		return models.TimelineAttachment{}, err
	}
	attachment := models.TimelineAttachment{
		TimelineEntryID: entry.ID,
		FileName:        fileName,
		StoredName:      storedName,
		FileSize:        fileSize,
	}
	if err := service.store.CreateAttachment(&attachment); err != nil {
		return models.TimelineAttachment{}, err
	}
	return attachment, nil
}

// DeleteAttachment removes the row and hands the attachment back so the
// caller can clean up the stored file.
func (service *TimelineService) DeleteAttachment(userID uint, attachmentID uint) (models.TimelineAttachment, error) {
	attachment, found, err := service.store.FindAttachmentByUserAndID(userID, attachmentID)
	if err != nil {
		return models.TimelineAttachment{}, err
	}
	if !found {
		return models.TimelineAttachment{}, ErrAttachmentNotFound
	}
	if err := service.store.DeleteAttachment(attachment.ID); err != nil {
		return models.TimelineAttachment{}, err
	}
	return attachment, nil
}

func (service *TimelineService) Overdue(entry models.TimelineEntry) bool {
	return IsOverdue(entry, service.now(), service.location)
}

type ProviderInput struct {
	Name    string
	Kind    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

func (service *TimelineService) CreateProvider(userID uint, payload ProviderInput) (models.Provider, error) {
	provider := models.Provider{
		UserID:  userID,
		Name:    payload.Name,
		Kind:    payload.Kind,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Address: payload.Address,
		Notes:   payload.Notes,
	}
	if err := service.store.CreateProvider(&provider); err != nil {
		return models.Provider{}, err
	}
	return provider, nil
}

func (service *TimelineService) UpdateProvider(userID uint, providerID uint, payload ProviderInput) (models.Provider, error) {
	provider, found, err := service.store.FindProviderByUserAndID(userID, providerID)
	if err != nil {
		return models.Provider{}, err
	}
	if !found {
		return models.Provider{}, ErrProviderNotFound
	}
	provider.Name = payload.Name
	provider.Kind = payload.Kind
	provider.Phone = payload.Phone
	provider.Email = payload.Email
	provider.Address = payload.Address
	provider.Notes = payload.Notes
	if err := service.store.SaveProvider(&provider); err != nil {
		return models.Provider{}, err
	}
	return provider, nil
}

func (service *TimelineService) FetchProviders(userID uint) ([]models.Provider, error) {
	return service.store.ListProviders(userID)
}

func (service *TimelineService) DeleteProvider(userID uint, providerID uint) error {
	_, found, err := service.store.FindProviderByUserAndID(userID, providerID)
	if err != nil {
		return err
	}
	if !found {
		return ErrProviderNotFound
	}
	return service.store.DeleteProvider(userID, providerID)
}
