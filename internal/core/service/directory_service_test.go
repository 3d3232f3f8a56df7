package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/ports"
)

// orderedUserRepo returns users in a fixed order so filtered output order is
// deterministic, unlike the map-backed stub.
type orderedUserRepo struct {
	stubUserRepo
	order []string
}

func newOrderedUserRepo() *orderedUserRepo {
	return &orderedUserRepo{stubUserRepo: *newStubUserRepo()}
}

func (r *orderedUserRepo) add(id, name, email, password string, role domain.Role, status domain.UserStatus) {
	r.stubUserRepo.add(id, name, email, password, role, status)
	r.order = append(r.order, email)
}

func (r *orderedUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, email := range r.order {
		if u, ok := r.users[email]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func newDirectoryFixture() (*DirectoryService, *orderedUserRepo) {
	repo := newOrderedUserRepo()
	repo.add("1", "John Doe", "patient@demo.com", "demo123", domain.RolePatient, domain.StatusActive)
	repo.add("2", "Dr. Sarah Smith", "doctor@demo.com", "demo123", domain.RoleDoctor, domain.StatusActive)
	repo.add("3", "Jane Wilson", "caregiver@demo.com", "demo123", domain.RoleCaregiver, domain.StatusActive)
	repo.add("4", "Mike Johnson", "admin@demo.com", "demo123", domain.RoleAdmin, domain.StatusActive)
	repo.add("5", "Emily Parker", "emily@demo.com", "demo123", domain.RolePatient, domain.StatusInactive)
	return NewDirectoryService(repo, zerolog.Nop()), repo
}

func TestDirectoryService_ListUsers_NoFilters(t *testing.T) {
	svc, _ := newDirectoryFixture()

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 5 {
		t.Fatalf("expected 5 matches, got %d", res.Matched)
	}
	want := ports.UserStats{Total: 5, Active: 4, Patients: 2, Doctors: 1, Caregivers: 1}
	if res.Stats != want {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
}

func TestDirectoryService_ListUsers_SearchMatchesNameOrEmail(t *testing.T) {
	svc, _ := newDirectoryFixture()

	// "doe" hits John Doe by name
	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Search: "DOE"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].Name != "John Doe" {
		t.Fatalf("unexpected result: %+v", res.Items)
	}

	// "caregiver" only appears in the email field
	res, err = svc.ListUsers(context.Background(), ports.ListUsersInput{Search: "caregiver@"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].Email != "caregiver@demo.com" {
		t.Fatalf("unexpected result: %+v", res.Items)
	}
}

func TestDirectoryService_ListUsers_FiltersCombineAsAND(t *testing.T) {
	svc, _ := newDirectoryFixture()

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{
		Search: "demo.com",
		Role:   "patient",
		Status: "active",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 || res.Items[0].ID != "1" {
		t.Fatalf("unexpected result: %+v", res.Items)
	}
}

func TestDirectoryService_ListUsers_AllSentinelMatchesEverything(t *testing.T) {
	svc, _ := newDirectoryFixture()

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Role: "all", Status: "all"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 5 {
		t.Fatalf("expected all users, got %d", res.Matched)
	}
}

func TestDirectoryService_ListUsers_StatsIgnoreFilters(t *testing.T) {
	svc, _ := newDirectoryFixture()

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Role: "doctor"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Matched != 1 {
		t.Fatalf("expected 1 doctor, got %d", res.Matched)
	}
	if res.Stats.Total != 5 || res.Stats.Patients != 2 {
		t.Fatalf("stats should cover the unfiltered directory: %+v", res.Stats)
	}
}

func TestDirectoryService_ListUsers_PreservesOrder(t *testing.T) {
	svc, _ := newDirectoryFixture()

	res, err := svc.ListUsers(context.Background(), ports.ListUsersInput{Role: "patient"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(res.Items) != 2 || res.Items[0].ID != "1" || res.Items[1].ID != "5" {
		t.Fatalf("expected base ordering preserved, got %+v", res.Items)
	}
}

func TestDirectoryService_CreateUser(t *testing.T) {
	svc, repo := newDirectoryFixture()

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "New Patient",
		Email:    "new@demo.com",
		Password: "demo123",
		Role:     "patient",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.Status != domain.StatusActive {
		t.Fatalf("unexpected user: %+v", created)
	}
	if _, ok := repo.users["new@demo.com"]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestDirectoryService_CreateUser_RejectsUnknownRole(t *testing.T) {
	svc, _ := newDirectoryFixture()

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Bad Role",
		Email:    "bad@demo.com",
		Password: "demo123",
		Role:     "superadmin",
	})
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestDirectoryService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newDirectoryFixture()

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Dup",
		Email:    "patient@demo.com",
		Password: "demo123",
		Role:     "patient",
	})
	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestDirectoryService_UpdateUserStatus(t *testing.T) {
	svc, repo := newDirectoryFixture()

	if err := svc.UpdateUserStatus(context.Background(), "1", "suspended"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.users["patient@demo.com"].Status != domain.StatusSuspended {
		t.Fatalf("status not persisted")
	}

	if err := svc.UpdateUserStatus(context.Background(), "1", "frozen"); err != domain.ErrInvalidUserStatus {
		t.Fatalf("expected ErrInvalidUserStatus, got %v", err)
	}
}

func TestDirectoryService_DeleteUser(t *testing.T) {
	svc, repo := newDirectoryFixture()

	if err := svc.DeleteUser(context.Background(), "5"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.users["emily@demo.com"]; ok {
		t.Fatalf("user still present after delete")
	}
	if err := svc.DeleteUser(context.Background(), "5"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
