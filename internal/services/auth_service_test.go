package services

import (
	"errors"
	"testing"

	"github.com/organizo-app/organizo/internal/models"
)

type stubUserRepository struct {
	existing  map[string]models.User
	createErr error
}

func (stub *stubUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, ok := stub.existing[email]
	return ok, nil
}

func (stub *stubUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user, ok := stub.existing[email]
	if !ok {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (stub *stubUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.existing {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubUserRepository) Create(user *models.User) error {
	return stub.createErr
}

func TestRegisterReportsDuplicateOnlyForUniqueViolations(t *testing.T) {
	input := RegistrationInput{Nome: "Ana", Email: "ana@x.com", Password: "p1"}

	tests := []struct {
		name      string
		createErr error
		wantTaken bool
	}{
		{
			name:      "insert race under the unique index",
			createErr: errors.New("UNIQUE constraint failed: usuarios.email"),
			wantTaken: true,
		},
		{
			name:      "unrelated storage failure propagates",
			createErr: errors.New("database is locked"),
			wantTaken: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewAuthService(&stubUserRepository{createErr: testCase.createErr})

			_, err := service.Register(input)
			if err == nil {
				t.Fatal("expected an error from Register")
			}
			if testCase.wantTaken && !errors.Is(err, ErrEmailTaken) {
				t.Fatalf("expected ErrEmailTaken, got %v", err)
			}
			if !testCase.wantTaken {
				if errors.Is(err, ErrEmailTaken) {
					t.Fatal("unrelated failure must not report a duplicate email")
				}
				if !errors.Is(err, testCase.createErr) {
					t.Fatalf("expected the raw storage error, got %v", err)
				}
			}
		})
	}
}

func TestRegisterRejectsKnownEmailBeforeInsert(t *testing.T) {
	stub := &stubUserRepository{
		existing: map[string]models.User{
			"ana@x.com": {ID: 1, Email: "ana@x.com"},
		},
	}
	service := NewAuthService(stub)

	_, err := service.Register(RegistrationInput{Nome: "Outra", Email: "ana@x.com", Password: "p2"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for known email, got %v", err)
	}
}
