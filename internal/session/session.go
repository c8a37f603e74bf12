// Package session holds the state of one signed-in run of the back office:
// the in-memory stores, the active view and the vehicle being edited.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/revenda/internal/auth"
	"github.com/jask/revenda/internal/dashboard"
	"github.com/jask/revenda/internal/database"
	"github.com/jask/revenda/internal/database/repository"
	"github.com/jask/revenda/internal/inventory"
	"github.com/jask/revenda/internal/seed"
)

// ErrUnauthenticated is returned by operations attempted before Login.
var ErrUnauthenticated = errors.New("sessão não autenticada")

// View is one of the screens reachable from the sidebar.
type View int

const (
	ViewDashboard View = iota
	ViewInventory
	ViewVehicleForm
	ViewClientForm
)

// Views returns the sidebar order.
func Views() []View {
	return []View{ViewDashboard, ViewInventory, ViewVehicleForm, ViewClientForm}
}

// Title is the sidebar label.
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewInventory:
		return "Estoque"
	case ViewVehicleForm:
		return "Cadastrar Veículo"
	case ViewClientForm:
		return "Cadastrar Cliente"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Notice is the confirmation shown after a save. The UI blocks until it is dismissed.
type Notice struct {
	Message string
}

const (
	NoticeVehicleCreated = "Veículo cadastrado com sucesso!"
	NoticeVehicleUpdated = "Veículo atualizado com sucesso!"
	NoticeClientCreated  = "Cliente cadastrado com sucesso!"
)

// Options configures Open.
type Options struct {
	Seed      seed.Data
	Gate      *auth.Gate
	ExportDir string
	Logger    *slog.Logger
}

// Session is passed by reference to every screen.
type Session struct {
	ID string

	db       *sql.DB
	vehicles *repository.VehicleRepo
	clients  *repository.ClientRepo
	gate     *auth.Gate
	exporter *inventory.Exporter
	log      *slog.Logger

	authenticated bool
	user          string
	view          View
	editing       *repository.Vehicle
}

// Open creates a fresh session store, applies the schema and loads the seed data.
// The store is discarded by Close.
func Open(ctx context.Context, opts Options) (*Session, error) {
	id := uuid.NewString()
	db, err := database.OpenMemory("revenda-" + id)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seed.Apply(ctx, db, opts.Seed); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("session", id)

	gate := opts.Gate
	if gate == nil {
		gate = auth.NewGate("", "")
	}
	if gate.Open() {
		logger.Warn("login gate is open: any non-empty credentials are accepted")
	}

	return &Session{
		ID:       id,
		db:       db,
		vehicles: repository.NewVehicleRepo(db),
		clients:  repository.NewClientRepo(db),
		gate:     gate,
		exporter: &inventory.Exporter{Dir: opts.ExportDir, Logger: logger},
		log:      logger,
		view:     ViewDashboard,
	}, nil
}

// Close drops the session store.
func (s *Session) Close() error { return s.db.Close() }

// Authenticated reports whether Login succeeded and Logout has not been called since.
func (s *Session) Authenticated() bool { return s.authenticated }

// User is the email used to sign in.
func (s *Session) User() string { return s.user }

// GateOpen reports whether the login gate accepts any non-empty submission.
func (s *Session) GateOpen() bool { return s.gate.Open() }

// View is the active screen.
func (s *Session) View() View { return s.view }

// Editing returns the vehicle being edited, or nil when the vehicle form creates a new one.
func (s *Session) Editing() *repository.Vehicle { return s.editing }

// Login checks the credentials against the gate and lands on the dashboard.
func (s *Session) Login(email, password string) error {
	if err := s.gate.Verify(email, password); err != nil {
		s.log.Info("login rejected", "email", email)
		return err
	}
	s.authenticated = true
	s.user = email
	s.view = ViewDashboard
	s.editing = nil
	s.log.Info("login", "email", email)
	return nil
}

// Logout returns to the login screen.
func (s *Session) Logout() {
	s.log.Info("logout", "email", s.user)
	s.authenticated = false
	s.user = ""
	s.view = ViewDashboard
	s.editing = nil
}

// Navigate switches the active view. Leaving the vehicle form drops the edit target.
func (s *Session) Navigate(v View) error {
	if !s.authenticated {
		return ErrUnauthenticated
	}
	if v != ViewVehicleForm {
		s.editing = nil
	}
	s.view = v
	return nil
}

// BeginEdit loads the vehicle with id and opens it in the vehicle form.
func (s *Session) BeginEdit(ctx context.Context, id int64) error {
	if !s.authenticated {
		return ErrUnauthenticated
	}
	v, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("vehicle %d: %w", id, repository.ErrNotFound)
	}
	s.editing = v
	s.view = ViewVehicleForm
	return nil
}

// CancelEdit abandons the form and goes back to the inventory.
func (s *Session) CancelEdit() {
	s.editing = nil
	s.view = ViewInventory
}

// SaveVehicle updates the vehicle under edit or appends a new one, then
// returns to the inventory.
func (s *Session) SaveVehicle(ctx context.Context, v repository.Vehicle) (Notice, error) {
	if !s.authenticated {
		return Notice{}, ErrUnauthenticated
	}
	var notice Notice
	if s.editing != nil {
		v.ID = s.editing.ID
		if err := s.vehicles.Update(ctx, v); err != nil {
			return Notice{}, fmt.Errorf("update vehicle: %w", err)
		}
		s.log.Info("vehicle updated", "id", v.ID, "plate", v.Plate)
		notice = Notice{Message: NoticeVehicleUpdated}
	} else {
		v.ID = 0
		created, err := s.vehicles.Insert(ctx, v)
		if err != nil {
			return Notice{}, fmt.Errorf("insert vehicle: %w", err)
		}
		s.log.Info("vehicle created", "id", created.ID, "plate", created.Plate)
		notice = Notice{Message: NoticeVehicleCreated}
	}
	s.editing = nil
	s.view = ViewInventory
	return notice, nil
}

// SaveClient appends c. The client form stays active.
func (s *Session) SaveClient(ctx context.Context, c repository.Client) (Notice, error) {
	if !s.authenticated {
		return Notice{}, ErrUnauthenticated
	}
	c.ID = 0
	created, err := s.clients.Insert(ctx, c)
	if err != nil {
		return Notice{}, fmt.Errorf("insert client: %w", err)
	}
	s.log.Info("client created", "id", created.ID)
	return Notice{Message: NoticeClientCreated}, nil
}

// Vehicles lists the inventory in insertion order.
func (s *Session) Vehicles(ctx context.Context) ([]repository.Vehicle, error) {
	return s.vehicles.List(ctx)
}

// Clients lists clients in submission order.
func (s *Session) Clients(ctx context.Context) ([]repository.Client, error) {
	return s.clients.List(ctx)
}

// Inventory returns the vehicles matching f.
func (s *Session) Inventory(ctx context.Context, f inventory.Filter) ([]repository.Vehicle, error) {
	all, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.Apply(all, f), nil
}

// Summary aggregates the current inventory for the dashboard.
func (s *Session) Summary(ctx context.Context) (dashboard.Summary, error) {
	all, err := s.vehicles.List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	return dashboard.Summarize(all), nil
}

// Export writes the vehicles matching f in the given format to the export directory.
func (s *Session) Export(ctx context.Context, format inventory.Format, f inventory.Filter) (inventory.Artifact, error) {
	rows, err := s.Inventory(ctx, f)
	if err != nil {
		return inventory.Artifact{}, err
	}
	return s.exporter.Export(ctx, format, rows)
}
