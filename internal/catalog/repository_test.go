package catalog

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("GOLFBALL_DB_DSN")
	if dsn == "" {
		t.Skip("GOLFBALL_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:         fmt.Sprintf("test-ball-%s", uuid.NewString()),
		Name:         "Test Ball",
		BasePrice:    95000,
		ImageURL:     "https://cdn.example.com/ball.png",
		Customizable: true,
		IsActive:     true,
		Colors: []models.ProductColor{
			{Name: "White", Hex: "#ffffff"},
		},
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestRepositorySlugRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	defer tx.Rollback()

	repo := NewRepository(tx)
	created := mustCreateTestProduct(t, tx)

	found, err := repo.FindBySlug(context.Background(), created.Slug)
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected product %s, got %s", created.ID, found.ID)
	}
	if len(found.Colors) != 1 {
		t.Fatalf("expected preloaded colors, got %d", len(found.Colors))
	}
}

func TestRepositoryReplaceColors(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	defer tx.Rollback()

	repo := NewRepository(tx)
	created := mustCreateTestProduct(t, tx)

	err := repo.ReplaceColors(context.Background(), created.ID, []models.ProductColor{
		{ProductID: created.ID, Name: "Yellow", Hex: "#ffe135"},
		{ProductID: created.ID, Name: "Orange", Hex: "#ff8c00"},
	})
	if err != nil {
		t.Fatalf("replace colors: %v", err)
	}

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}

	var colors []models.ProductColor
	if err := tx.Where("product_id = ?", found.ID).Find(&colors).Error; err != nil {
		t.Fatalf("list colors: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors after replace, got %d", len(colors))
	}
}
