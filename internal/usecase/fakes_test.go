package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeStore is an in-memory DocumentStore with per-call failure hooks.
type fakeStore struct {
	mu   sync.Mutex
	seq  int
	docs map[string][]entity.Document

	listErr map[string]error
	// createErrs is consumed one error per CreateDocument call on the collection.
	createErrs map[string][]error
	// dropCreates makes CreateDocument report success without persisting.
	dropCreates map[string]bool
	// onGet runs before every GetDocument; a non-nil error is returned as is.
	onGet func(collection, id string) error

	listCalls   []listCall
	createCalls map[string]int
	updateCalls int
}

type listCall struct {
	collection string
	filters    []repository.Filter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:        make(map[string][]entity.Document),
		listErr:     make(map[string]error),
		createErrs:  make(map[string][]error),
		dropCreates: make(map[string]bool),
		createCalls: make(map[string]int),
	}
}

// seed stores a document with a fixed id.
func (s *fakeStore) seed(collection, id string, fields map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], entity.Document{
		ID:         id,
		Collection: collection,
		Data:       entity.JSON(fields),
	})
}

func (s *fakeStore) find(collection, id string) (int, bool) {
	for i, doc := range s.docs[collection] {
		if doc.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *fakeStore) ListDocuments(ctx context.Context, collection string, filters ...repository.Filter) ([]entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls = append(s.listCalls, listCall{collection: collection, filters: filters})
	if err := s.listErr[collection]; err != nil {
		return nil, err
	}

	var out []entity.Document
	for _, doc := range s.docs[collection] {
		match := true
		for _, f := range filters {
			if doc.Data[f.Field] != f.Value {
				match = false
				break
			}
		}
		if match {
			out = append(out, copyDocument(doc))
		}
	}
	return out, nil
}

func (s *fakeStore) GetDocument(ctx context.Context, collection, id string) (*entity.Document, error) {
	if s.onGet != nil {
		if err := s.onGet(collection, id); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(collection, id)
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	doc := copyDocument(s.docs[collection][i])
	return &doc, nil
}

func (s *fakeStore) CreateDocument(ctx context.Context, collection, id string, fields map[string]interface{}, permissions ...string) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls[collection]++
	if errs := s.createErrs[collection]; len(errs) > 0 {
		s.createErrs[collection] = errs[1:]
		if errs[0] != nil {
			return nil, errs[0]
		}
	}

	if id == "" || id == entity.UniqueID {
		s.seq++
		id = fmt.Sprintf("%s-%d", collection, s.seq)
	}
	doc := entity.Document{
		ID:          id,
		Collection:  collection,
		Data:        entity.JSON(fields),
		Permissions: entity.StringList(permissions),
	}
	if !s.dropCreates[collection] {
		s.docs[collection] = append(s.docs[collection], doc)
	}
	out := copyDocument(doc)
	return &out, nil
}

func (s *fakeStore) UpdateDocument(ctx context.Context, collection, id string, fields map[string]interface{}) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateCalls++
	i, ok := s.find(collection, id)
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}
	for k, v := range fields {
		s.docs[collection][i].Data[k] = v
	}
	doc := copyDocument(s.docs[collection][i])
	return &doc, nil
}

func (s *fakeStore) DeleteDocument(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(collection, id)
	if !ok {
		return repository.ErrDocumentNotFound
	}
	s.docs[collection] = append(s.docs[collection][:i], s.docs[collection][i+1:]...)
	return nil
}

func (s *fakeStore) documents(collection string) []entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Document, 0, len(s.docs[collection]))
	for _, doc := range s.docs[collection] {
		out = append(out, copyDocument(doc))
	}
	return out
}

func copyDocument(doc entity.Document) entity.Document {
	data := make(entity.JSON, len(doc.Data))
	for k, v := range doc.Data {
		data[k] = v
	}
	doc.Data = data
	doc.Permissions = append(entity.StringList(nil), doc.Permissions...)
	return doc
}

// fakeAccounts is an in-memory AccountClient holding a single current session.
type fakeAccounts struct {
	mu       sync.Mutex
	seq      int
	accounts map[string]*fakeAccount
	current  *entity.Account
	session  *entity.Session

	createSessionErr error
	deleteSessionErr error

	calls []string
}

type fakeAccount struct {
	account  entity.Account
	password string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: make(map[string]*fakeAccount)}
}

// addAccount registers an account without signing it in.
func (a *fakeAccounts) addAccount(id, email, password, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts[email] = &fakeAccount{
		account:  entity.Account{ID: id, Email: email, Name: name},
		password: password,
	}
}

// signIn binds the client to the account as if a session already existed.
func (a *fakeAccounts) signIn(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	acc := a.accounts[email].account
	a.current = &acc
	a.session = &entity.Session{ID: "existing", AccountID: acc.ID, Token: "existing-token"}
}

func (a *fakeAccounts) record(call string) {
	a.calls = append(a.calls, call)
}

func (a *fakeAccounts) GetCurrentAccount(ctx context.Context) (*entity.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("GetCurrentAccount")

	if a.current == nil {
		return nil, repository.ErrNotAuthenticated
	}
	acc := *a.current
	return &acc, nil
}

func (a *fakeAccounts) CreateSession(ctx context.Context, email, password string) (*entity.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("CreateSession")

	if a.createSessionErr != nil {
		return nil, a.createSessionErr
	}
	acc, ok := a.accounts[email]
	if !ok || acc.password != password {
		return nil, repository.ErrInvalidCredentials
	}

	a.seq++
	current := acc.account
	a.current = &current
	a.session = &entity.Session{
		ID:        fmt.Sprintf("session-%d", a.seq),
		AccountID: current.ID,
		Token:     fmt.Sprintf("token-%d", a.seq),
	}
	session := *a.session
	return &session, nil
}

func (a *fakeAccounts) DeleteSession(ctx context.Context, sessionID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("DeleteSession")

	if a.deleteSessionErr != nil {
		return a.deleteSessionErr
	}
	if a.session == nil {
		return repository.ErrNoActiveSession
	}
	a.session = nil
	a.current = nil
	return nil
}

func (a *fakeAccounts) CreateAccount(ctx context.Context, id, email, password, name string) (*entity.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("CreateAccount")

	if len(password) < 8 {
		return nil, repository.ErrWeakPassword
	}
	if _, exists := a.accounts[email]; exists {
		return nil, repository.ErrDuplicateEmail
	}
	if id == "" || id == entity.UniqueID {
		a.seq++
		id = fmt.Sprintf("account-%d", a.seq)
	}
	acc := entity.Account{ID: id, Email: email, Name: name}
	a.accounts[email] = &fakeAccount{account: acc, password: password}
	return &acc, nil
}

func (a *fakeAccounts) WithSession(token string) repository.AccountClient {
	return a
}

func (a *fakeAccounts) callLog() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}
