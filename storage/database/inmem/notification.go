package inmemdb

import (
	"sort"

	"github.com/trezcool/darasa/core/notification"
)

// Preference store

type preferenceRepository struct {
	db *preferenceTable
}

var _ notification.PreferenceRepository = (*preferenceRepository)(nil) // interface compliance check

func NewPreferenceRepository(db *DB) notification.PreferenceRepository {
	return &preferenceRepository{db: db.preference}
}

func (repo *preferenceRepository) query() []notification.Preference {
	prefs := make([]notification.Preference, 0, len(repo.db.table))
	for _, pref := range repo.db.table {
		prefs = append(prefs, *pref)
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].ID < prefs[j].ID })
	return prefs
}

func (repo *preferenceRepository) CreatePreference(pref notification.Preference) (notification.Preference, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// one record per parent email; a concurrent create settles on the first
	for _, existing := range repo.db.table {
		if existing.ParentEmail == pref.ParentEmail {
			return *existing, nil
		}
	}

	repo.db.pk++
	pref.ID = repo.db.pk
	repo.db.table[pref.ID] = &pref
	return pref, nil
}

func (repo *preferenceRepository) GetPreferenceByEmail(parentEmail string) (notification.Preference, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, pref := range repo.db.table {
		if pref.ParentEmail == parentEmail {
			return *pref, nil
		}
	}
	return notification.Preference{}, notification.ErrPreferenceNotFound
}

func (repo *preferenceRepository) QueryAllPreferences() ([]notification.Preference, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *preferenceRepository) UpdatePreference(pref notification.Preference) (notification.Preference, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[pref.ID]; !ok {
		return notification.Preference{}, notification.ErrPreferenceNotFound
	}
	repo.db.table[pref.ID] = &pref
	return pref, nil
}

// Email log

type emailLogRepository struct {
	db *emailLogTable
}

var _ notification.LogRepository = (*emailLogRepository)(nil) // interface compliance check

func NewEmailLogRepository(db *DB) notification.LogRepository {
	return &emailLogRepository{db: db.emailLog}
}

func (repo *emailLogRepository) AppendMessage(msg notification.EmailMessage) (notification.EmailMessage, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	msg.ID = repo.db.pk
	repo.db.table[msg.ID] = &msg
	return msg, nil
}

func (repo *emailLogRepository) SetMessageStatus(id int, status string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	msg, ok := repo.db.table[id]
	if !ok {
		return notification.ErrMessageNotFound
	}
	msg.Status = status
	return nil
}

func (repo *emailLogRepository) QueryAllMessages() ([]notification.EmailMessage, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// serial ids follow insertion order
	msgs := make([]notification.EmailMessage, 0, len(repo.db.table))
	for _, msg := range repo.db.table {
		msgs = append(msgs, *msg)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })
	return msgs, nil
}
