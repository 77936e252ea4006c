package database

import (
	"database/sql"
	"fmt"
	"strings"

	"club-manager/app/models"
)

// AthleteFilters represents filtering options for member listings
type AthleteFilters struct {
	Search    string
	Status    string
	AgeGroup  string
	Role      string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, birth_date, age_group, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.BirthDate, &user.AgeGroup, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, birth_date, age_group, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.BirthDate, &user.AgeGroup, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND r.is_active = true
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// CreateUser inserts a user and attaches the given roles in one transaction
func CreateUser(db *sql.DB, user *models.User, roleNames []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (email, password, first_name, last_name, phone, birth_date, age_group, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(query,
		user.Email, user.Password, user.FirstName, user.LastName,
		user.Phone, user.BirthDate, user.AgeGroup,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	for _, name := range roleNames {
		_, err = tx.Exec(`
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE name = $2
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, user.ID, name)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

// UpdateUser updates profile fields of an existing user
func UpdateUser(db *sql.DB, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, phone = $4,
			birth_date = $5, age_group = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`
	res, err := db.Exec(query,
		user.Email, user.FirstName, user.LastName, user.Phone,
		user.BirthDate, user.AgeGroup, user.IsActive, user.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	return err
}

// DeactivateUser soft-disables a user; rows referencing it stay intact
func DeactivateUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAthletes lists users holding the athlete role, with optional filters
func GetAthletes(db *sql.DB, filters AthleteFilters) ([]*models.User, error) {
	baseQuery := `
		SELECT DISTINCT u.id, u.email, u.first_name, u.last_name, u.phone,
			u.birth_date, u.age_group, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE r.name = 'athlete'
	`
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}
	if filters.AgeGroup != "" {
		conditions = append(conditions, fmt.Sprintf("u.age_group = $%d", argIndex))
		args = append(args, filters.AgeGroup)
		argIndex++
	}
	switch filters.Status {
	case "active":
		conditions = append(conditions, "u.is_active = true")
	case "inactive":
		conditions = append(conditions, "u.is_active = false")
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := "u.last_name"
	if filters.SortBy == "created_at" {
		sortBy = "u.created_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, sortOrder)

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
		argIndex++
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []*models.User
	for rows.Next() {
		u := &models.User{}
		err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
			&u.BirthDate, &u.AgeGroup, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, u)
	}
	return athletes, rows.Err()
}
