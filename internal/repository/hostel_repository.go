package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/campuscore-backend/internal/model"
)

// Allocation errors surfaced to the service layer.
var (
	ErrRoomFull           = errors.New("room has no free space")
	ErrApplicationDecided = errors.New("application already decided")
	ErrNoFreeRoom         = errors.New("no room with free space in hostel")
)

// HostelRepository handles hostel, room, and application data access.
type HostelRepository struct {
	pool *pgxpool.Pool
}

// NewHostelRepository creates a new HostelRepository.
func NewHostelRepository(pool *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{pool: pool}
}

// GetHostelByID retrieves a hostel by ID.
func (r *HostelRepository) GetHostelByID(ctx context.Context, id int) (*model.Hostel, error) {
	h := &model.Hostel{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, gender, campus, created_at, updated_at FROM hostels WHERE id = $1`, id,
	).Scan(&h.ID, &h.Name, &h.Gender, &h.Campus, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ListHostels retrieves all hostels.
func (r *HostelRepository) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, gender, campus, created_at, updated_at FROM hostels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hostels []model.Hostel
	for rows.Next() {
		var h model.Hostel
		if err := rows.Scan(&h.ID, &h.Name, &h.Gender, &h.Campus, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hostels = append(hostels, h)
	}
	return hostels, rows.Err()
}

// CreateHostel inserts a new hostel.
func (r *HostelRepository) CreateHostel(ctx context.Context, h *model.Hostel) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO hostels (name, gender, campus) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		h.Name, h.Gender, h.Campus,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

// UpdateHostel modifies an existing hostel.
func (r *HostelRepository) UpdateHostel(ctx context.Context, h *model.Hostel) error {
	return r.pool.QueryRow(ctx,
		`UPDATE hostels SET name = $1, gender = $2, campus = $3, updated_at = NOW()
		 WHERE id = $4 RETURNING created_at, updated_at`,
		h.Name, h.Gender, h.Campus, h.ID,
	).Scan(&h.CreatedAt, &h.UpdatedAt)
}

// DeleteHostel removes a hostel.
func (r *HostelRepository) DeleteHostel(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	return err
}

// ListRooms retrieves the rooms of a hostel.
func (r *HostelRepository) ListRooms(ctx context.Context, hostelID int) ([]model.Room, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, hostel_id, number, capacity, occupancy, created_at, updated_at
		 FROM rooms WHERE hostel_id = $1 ORDER BY number`, hostelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.HostelID, &room.Number, &room.Capacity, &room.Occupancy,
			&room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// CreateRoom inserts a new room.
func (r *HostelRepository) CreateRoom(ctx context.Context, room *model.Room) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO rooms (hostel_id, number, capacity) VALUES ($1, $2, $3)
		 RETURNING id, occupancy, created_at, updated_at`,
		room.HostelID, room.Number, room.Capacity,
	).Scan(&room.ID, &room.Occupancy, &room.CreatedAt, &room.UpdatedAt)
}

// DeleteRoom removes an empty room. Rooms with occupants keep their FK rows.
func (r *HostelRepository) DeleteRoom(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return err
}

// GetApplicationByID retrieves a hostel application with joined display fields.
func (r *HostelRepository) GetApplicationByID(ctx context.Context, id int) (*model.HostelApplication, error) {
	a := &model.HostelApplication{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.student_id, a.hostel_id, a.session, a.status, a.room_id,
		        a.created_at, a.updated_at, s.name, s.matric_no, h.name,
		        COALESCE(rm.number, '')
		 FROM hostel_applications a
		 JOIN students s ON a.student_id = s.id
		 JOIN hostels h ON a.hostel_id = h.id
		 LEFT JOIN rooms rm ON a.room_id = rm.id
		 WHERE a.id = $1`, id,
	).Scan(&a.ID, &a.StudentID, &a.HostelID, &a.Session, &a.Status, &a.RoomID,
		&a.CreatedAt, &a.UpdatedAt, &a.StudentName, &a.MatricNo, &a.HostelName, &a.RoomNumber)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetApplicationForStudent retrieves a student's application for one session.
func (r *HostelRepository) GetApplicationForStudent(ctx context.Context, studentID int, session string) (*model.HostelApplication, error) {
	a := &model.HostelApplication{}
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.student_id, a.hostel_id, a.session, a.status, a.room_id,
		        a.created_at, a.updated_at, h.name, COALESCE(rm.number, '')
		 FROM hostel_applications a
		 JOIN hostels h ON a.hostel_id = h.id
		 LEFT JOIN rooms rm ON a.room_id = rm.id
		 WHERE a.student_id = $1 AND a.session = $2`, studentID, session,
	).Scan(&a.ID, &a.StudentID, &a.HostelID, &a.Session, &a.Status, &a.RoomID,
		&a.CreatedAt, &a.UpdatedAt, &a.HostelName, &a.RoomNumber)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListApplications retrieves applications for a hostel and session.
func (r *HostelRepository) ListApplications(ctx context.Context, hostelID int, session string) ([]model.HostelApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.hostel_id, a.session, a.status, a.room_id,
		        a.created_at, a.updated_at, s.name, s.matric_no, COALESCE(rm.number, '')
		 FROM hostel_applications a
		 JOIN students s ON a.student_id = s.id
		 LEFT JOIN rooms rm ON a.room_id = rm.id
		 WHERE a.hostel_id = $1 AND a.session = $2
		 ORDER BY a.created_at`, hostelID, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.HostelApplication
	for rows.Next() {
		var a model.HostelApplication
		if err := rows.Scan(&a.ID, &a.StudentID, &a.HostelID, &a.Session, &a.Status, &a.RoomID,
			&a.CreatedAt, &a.UpdatedAt, &a.StudentName, &a.MatricNo, &a.RoomNumber); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// CreateApplication inserts a new pending application. The
// UNIQUE(student_id, session) constraint rejects duplicates.
func (r *HostelRepository) CreateApplication(ctx context.Context, a *model.HostelApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO hostel_applications (student_id, hostel_id, session, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.StudentID, a.HostelID, a.Session, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Allocate assigns a pending application to a room inside one transaction.
// The occupancy increment is guarded by `occupancy < capacity`, so two
// concurrent allocations can never oversubscribe a room: the second update
// matches zero rows and the transaction rolls back with ErrRoomFull.
// When roomID is nil the first room in the hostel with free space is chosen.
func (r *HostelRepository) Allocate(ctx context.Context, applicationID int, roomID *int) (*model.HostelApplication, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var app model.HostelApplication
	err = tx.QueryRow(ctx,
		`SELECT id, student_id, hostel_id, session, status
		 FROM hostel_applications WHERE id = $1 FOR UPDATE`, applicationID,
	).Scan(&app.ID, &app.StudentID, &app.HostelID, &app.Session, &app.Status)
	if err != nil {
		return nil, err
	}
	if app.Status != model.HostelApplicationPending {
		return nil, ErrApplicationDecided
	}

	target := 0
	if roomID != nil {
		target = *roomID
		tag, err := tx.Exec(ctx,
			`UPDATE rooms SET occupancy = occupancy + 1, updated_at = NOW()
			 WHERE id = $1 AND hostel_id = $2 AND occupancy < capacity`,
			target, app.HostelID)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrRoomFull
		}
	} else {
		// Pick the first room with free space, locking it so the occupancy
		// check and increment act on the same row.
		err = tx.QueryRow(ctx,
			`SELECT id FROM rooms
			 WHERE hostel_id = $1 AND occupancy < capacity
			 ORDER BY number
			 LIMIT 1
			 FOR UPDATE SKIP LOCKED`, app.HostelID,
		).Scan(&target)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNoFreeRoom
			}
			return nil, err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE rooms SET occupancy = occupancy + 1, updated_at = NOW() WHERE id = $1`,
			target); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE hostel_applications
		 SET status = 'ALLOCATED', room_id = $1, updated_at = NOW()
		 WHERE id = $2`, target, applicationID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetApplicationByID(ctx, applicationID)
}

// RejectApplication marks a pending application REJECTED.
func (r *HostelRepository) RejectApplication(ctx context.Context, applicationID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE hostel_applications SET status = 'REJECTED', updated_at = NOW()
		 WHERE id = $1 AND status = 'PENDING'`, applicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicationDecided
	}
	return nil
}
