package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"gorm.io/gorm"

	"articlehub/internal/config"
	"articlehub/internal/db"
	"articlehub/internal/model"
	"articlehub/internal/repository"
	"articlehub/internal/service"
)

//go:embed fixture.json
var defaultFixture []byte

// SeedData is the layout of a seed fixture.
type SeedData struct {
	Articles []SeedArticle `json:"articles"`
}

// SeedArticle is one article with its comments and vote counts.
type SeedArticle struct {
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Image            string        `json:"image"`
	ImageAlt         string        `json:"imageAlt"`
	Likes            int           `json:"likes"`
	Dislikes         int           `json:"dislikes"`
	Comments         []SeedComment `json:"comments"`
}

// SeedComment is one comment with its vote counts.
type SeedComment struct {
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

func main() {
	file := flag.String("file", "", "path to a JSON fixture (defaults to the embedded one)")
	url := flag.String("url", "", "URL to fetch a JSON fixture from")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	raw, err := loadFixture(*file, *url)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}
	log.Printf("Loaded %d articles", len(data.Articles))

	if err := truncateContent(gormDB); err != nil {
		log.Fatalf("Failed to reset content tables: %v", err)
	}
	log.Println("Content tables reset")

	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	articles := service.NewArticleService(articleRepo, nil)
	comments := service.NewCommentService(commentRepo, articleRepo)
	likes := service.NewLikeService(repository.NewLikeRepository(gormDB), articleRepo, commentRepo)

	ctx := context.Background()
	var articleCount, commentCount, voteCount int
	for _, item := range data.Articles {
		article, err := articles.Create(ctx, service.ArticleInput{
			Title:            &item.Title,
			ShortDescription: &item.ShortDescription,
			Description:      &item.Description,
			Image:            &item.Image,
			ImageAlt:         &item.ImageAlt,
		})
		if err != nil {
			log.Printf("Skipping article %q: %v", item.Title, err)
			continue
		}
		articleCount++

		n, err := vote(ctx, likes, string(model.LikeableArticle), article.ID, item.Likes, item.Dislikes)
		if err != nil {
			log.Fatalf("Failed to record votes for article %d: %v", article.ID, err)
		}
		voteCount += n

		for _, c := range item.Comments {
			comment, err := comments.Create(ctx, article.ID, c.Content)
			if err != nil {
				log.Printf("Skipping comment on article %d: %v", article.ID, err)
				continue
			}
			commentCount++

			n, err := vote(ctx, likes, string(model.LikeableComment), comment.ID, c.Likes, c.Dislikes)
			if err != nil {
				log.Fatalf("Failed to record votes for comment %d: %v", comment.ID, err)
			}
			voteCount += n
		}
	}

	log.Printf("Seed completed: %d articles, %d comments, %d votes", articleCount, commentCount, voteCount)
}

func loadFixture(file, url string) ([]byte, error) {
	switch {
	case file != "":
		return os.ReadFile(file)
	case url != "":
		return fetchFixture(url)
	default:
		return defaultFixture, nil
	}
}

// fetchFixture downloads a fixture from url.
func fetchFixture(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// truncateContent empties the content tables, leaving users and sessions alone.
func truncateContent(gormDB *gorm.DB) error {
	return gormDB.Transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{&model.Like{}, &model.Comment{}, &model.Article{}, &model.Image{}} {
			if err := tx.Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func vote(ctx context.Context, likes service.LikeService, kind string, id uint, up, down int) (int, error) {
	for i := 0; i < up; i++ {
		if _, err := likes.React(ctx, kind, id, string(model.ReactionLike)); err != nil {
			return i, err
		}
	}
	for i := 0; i < down; i++ {
		if _, err := likes.React(ctx, kind, id, string(model.ReactionDislike)); err != nil {
			return up + i, err
		}
	}
	return up + down, nil
}
