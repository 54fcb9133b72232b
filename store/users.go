package store

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// userSearchClause ORs a case-insensitive substring match across the four
// searchable columns. LOWER/LIKE instead of ILIKE so the same query runs on
// postgres and the sqlite used in tests.
const userSearchClause = "LOWER(name) LIKE ? OR LOWER(firstnames) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone_number) LIKE ?"

// ListUsers returns one page of users plus the total matching the search
// predicate. Items come back ordered by id so pages are stable.
func (s *Store) ListUsers(p utils.PageParams) ([]models.User, int64, error) {
	q := s.db.Model(&models.User{})
	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(userSearchClause, like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.User
	err := q.Order("id").Offset(p.Offset()).Limit(p.PageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// CreateUser normalizes, hashes the password and inserts. A duplicate email
// surfaces as gorm.ErrDuplicatedKey.
func (s *Store) CreateUser(in utils.UserInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:        strings.TrimSpace(in.Name),
		Firstnames:  strings.TrimSpace(in.Firstnames),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		IsAdmin:     in.IsAdmin,
		Password:    string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckPassword compares a candidate password against the stored hash.
func (s *Store) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// UpdateUser applies only the fields present in the patch. The password, when
// included, is re-hashed before storage.
func (s *Store) UpdateUser(id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Firstnames != nil {
		updates["firstnames"] = strings.TrimSpace(*patch.Firstnames)
	}
	if patch.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*patch.PhoneNumber)
	}
	if patch.IsAdmin != nil {
		updates["is_admin"] = *patch.IsAdmin
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new hash for the change-password flow.
func (s *Store) UpdatePassword(id uuid.UUID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", string(hashed)).Error
}

// DeleteUser hard-deletes by id; a missing row reports gorm.ErrRecordNotFound.
func (s *Store) DeleteUser(id uuid.UUID) error {
	res := s.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
