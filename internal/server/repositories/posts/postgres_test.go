package posts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/galeri/internal/common"
	"github.com/dmitrijs2005/galeri/internal/server/models"
)

var postCols = []string{"id", "title", "author", "summary", "content", "image_url", "created_at"}

var commentCols = []string{"id", "post_id", "author", "text", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_InlinesCommentsPerPost(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM blog_posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM blog_posts ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "Konservasi naskah", "Admin", "ringkasan", "isi", "", now).
			AddRow("p2", "Koleksi baru", "Admin", "ringkasan", "isi", "", now))

	mock.ExpectQuery(`SELECT .* FROM comments WHERE post_id = \$1 ORDER BY created_at ASC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("c1", "p1", "Budi", "menarik!", now).
			AddRow("c2", "p1", "Sari", "setuju", now))

	mock.ExpectQuery(`SELECT .* FROM comments WHERE post_id = \$1 ORDER BY created_at ASC`).
		WithArgs("p2").
		WillReturnRows(sqlmock.NewRows(commentCols))

	result, total, err := repo.List(context.Background(), 1, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(result) != 2 {
		t.Fatalf("want 2/2, got %d/%d", total, len(result))
	}
	if len(result[0].Comments) != 2 {
		t.Fatalf("want 2 comments on first post, got %d", len(result[0].Comments))
	}
	if result[0].Comments[0].Author != "Budi" {
		t.Fatalf("comments out of order: %+v", result[0].Comments)
	}
	if len(result[1].Comments) != 0 {
		t.Fatalf("want no comments on second post, got %d", len(result[1].Comments))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestList_SearchAppliesToTitleSummaryAuthor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM blog_posts WHERE title ILIKE \$1 OR summary ILIKE \$1 OR author ILIKE \$1`).
		WithArgs("%naskah%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT .* FROM blog_posts WHERE title ILIKE \$1 OR summary ILIKE \$1 OR author ILIKE \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("%naskah%", 10, 0).
		WillReturnRows(sqlmock.NewRows(postCols))

	result, total, err := repo.List(context.Background(), 1, 10, "naskah")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || len(result) != 0 {
		t.Fatalf("want empty page, got %d/%d", total, len(result))
	}
}

func TestGetByID_WithComments(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM blog_posts WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "Konservasi naskah", "Admin", "ringkasan", "isi", "img.jpg", now))

	mock.ExpectQuery(`SELECT .* FROM comments WHERE post_id = \$1 ORDER BY created_at ASC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("c1", "p1", "Budi", "menarik!", now))

	p, err := repo.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p1" || len(p.Comments) != 1 || p.Comments[0].PostID != "p1" {
		t.Fatalf("unexpected post: %+v", p)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM blog_posts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCreate_StartsWithEmptyComments(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO blog_posts .* RETURNING id, created_at`).
		WithArgs("Judul", "Admin", "ringkasan", "isi", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p-new", created))

	p, err := repo.Create(context.Background(), &models.Post{
		Title: "Judul", Author: "Admin", Summary: "ringkasan", Content: "isi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p-new" || !p.CreatedAt.Equal(created) {
		t.Fatalf("store-assigned fields not applied: %+v", p)
	}
	if p.Comments == nil || len(p.Comments) != 0 {
		t.Fatalf("want empty comments collection, got %+v", p.Comments)
	}
}

func TestAddComment_ReturnsStoredRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO comments .* RETURNING id, created_at`).
		WithArgs("p1", "Budi", "menarik!").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-new", created))

	c, err := repo.AddComment(context.Background(), "p1", &models.Comment{Author: "Budi", Text: "menarik!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "c-new" || c.PostID != "p1" || !c.CreatedAt.Equal(created) {
		t.Fatalf("unexpected comment: %+v", c)
	}
}

func TestAddComment_MissingParentPost(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO comments .* RETURNING id, created_at`).
		WithArgs("ghost", "Budi", "halo").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := repo.AddComment(context.Background(), "ghost", &models.Comment{Author: "Budi", Text: "halo"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound for missing parent, got %v", err)
	}
}

func TestUpdate_NeverTouchesComments(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE blog_posts SET .* WHERE id = \$1 .*RETURNING`).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("p1", "Judul baru", "Admin", "ringkasan", "isi", "", now))

	mock.ExpectQuery(`SELECT .* FROM comments WHERE post_id = \$1 ORDER BY created_at ASC`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("c1", "p1", "Budi", "lama", now))

	title := "Judul baru"
	p, err := repo.Update(context.Background(), "p1", &models.PostUpdate{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Judul baru" || len(p.Comments) != 1 {
		t.Fatalf("unexpected post after update: %+v", p)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM blog_posts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
