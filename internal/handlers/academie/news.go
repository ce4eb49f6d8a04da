package academie

import (
	"log"
	"net/http"
	"strings"
	"time"

	"academie_back_end/internal/database"
	"academie_back_end/internal/models"
	"academie_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// GET /api/news — actualités publiées
func ListNews(c *gin.Context) {
	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(
		`SELECT article_id, title, slug, excerpt, content, cover_url,
			is_published, published_at, created_at, updated_at
		 FROM news`,
	).WithContext(c.Request.Context()).Iter()

	articles := []models.NewsArticle{}
	var a models.NewsArticle
	for iter.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.CoverURL,
		&a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt) {
		if !a.IsPublished {
			a = models.NewsArticle{}
			continue
		}
		articles = append(articles, a)
		a = models.NewsArticle{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture actualités"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GET /api/news/:slug — article publié, lookup par slug ou par id
func GetNewsArticle(c *gin.Context) {
	param := c.Param("slug")

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var articleID gocql.UUID
	if parsed, err := uuid.Parse(param); err == nil {
		articleID = gocql.UUID(parsed)
	} else {
		if err := session.Query(
			`SELECT article_id FROM news_by_slug WHERE slug = ?`, param,
		).WithContext(c.Request.Context()).Scan(&articleID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
			return
		}
	}

	var a models.NewsArticle
	if err := session.Query(
		`SELECT article_id, title, slug, excerpt, content, cover_url,
			is_published, published_at, created_at, updated_at
		 FROM news WHERE article_id = ?`, articleID,
	).WithContext(c.Request.Context()).Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.CoverURL,
		&a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil || !a.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": a})
}

// GET /api/news/search?q=...
func SearchNews(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	results, err := services.SearchNews(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// POST /api/admin/news
func CreateNewsArticle(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Excerpt     string `json:"excerpt"`
		Content     string `json:"content" binding:"required"`
		CoverURL    string `json:"cover_url"`
		IsPublished bool   `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	now := time.Now()
	article := models.NewsArticle{
		ID:          gocql.TimeUUID(),
		Title:       input.Title,
		Slug:        slugify(input.Title),
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		CoverURL:    input.CoverURL,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsPublished {
		article.PublishedAt = now
	}

	if err := session.Query(
		`INSERT INTO news (article_id, title, slug, excerpt, content, cover_url,
			is_published, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		article.ID, article.Title, article.Slug, article.Excerpt, article.Content,
		article.CoverURL, article.IsPublished, article.PublishedAt, now, now,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création article"})
		return
	}

	session.Query(
		`INSERT INTO news_by_slug (slug, article_id) VALUES (?, ?)`,
		article.Slug, article.ID,
	).WithContext(c.Request.Context()).Exec()

	if article.IsPublished {
		services.IndexNewsArticle(article)
	}

	log.Printf("📰 Article créé: %s", article.Title)
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// PUT /api/admin/news/:id
func UpdateNewsArticle(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Excerpt     *string `json:"excerpt"`
		Content     *string `json:"content"`
		CoverURL    *string `json:"cover_url"`
		IsPublished *bool   `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var a models.NewsArticle
	if err := session.Query(
		`SELECT article_id, title, slug, excerpt, content, cover_url,
			is_published, published_at, created_at, updated_at
		 FROM news WHERE article_id = ?`, gocql.UUID(articleID),
	).WithContext(c.Request.Context()).Scan(
		&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.CoverURL,
		&a.IsPublished, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	oldSlug := a.Slug
	if input.Title != nil {
		a.Title = *input.Title
		a.Slug = slugify(*input.Title)
	}
	if input.Excerpt != nil {
		a.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		a.Content = *input.Content
	}
	if input.CoverURL != nil {
		a.CoverURL = *input.CoverURL
	}
	if input.IsPublished != nil {
		// Première publication : on fige la date
		if *input.IsPublished && !a.IsPublished {
			a.PublishedAt = time.Now()
		}
		a.IsPublished = *input.IsPublished
	}
	a.UpdatedAt = time.Now()

	if err := session.Query(
		`UPDATE news SET title = ?, slug = ?, excerpt = ?, content = ?, cover_url = ?,
			is_published = ?, published_at = ?, updated_at = ?
		 WHERE article_id = ?`,
		a.Title, a.Slug, a.Excerpt, a.Content, a.CoverURL,
		a.IsPublished, a.PublishedAt, a.UpdatedAt, a.ID,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour article"})
		return
	}

	if a.Slug != oldSlug {
		session.Query(`DELETE FROM news_by_slug WHERE slug = ?`, oldSlug).
			WithContext(c.Request.Context()).Exec()
		session.Query(`INSERT INTO news_by_slug (slug, article_id) VALUES (?, ?)`, a.Slug, a.ID).
			WithContext(c.Request.Context()).Exec()
	}

	if a.IsPublished {
		services.IndexNewsArticle(a)
	} else {
		services.RemoveFromIndex("news", a.ID.String())
	}

	c.JSON(http.StatusOK, gin.H{"article": a})
}

// DELETE /api/admin/news/:id
func DeleteNewsArticle(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	session, err := database.GetAcademieSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var slug string
	session.Query(
		`SELECT slug FROM news WHERE article_id = ?`, gocql.UUID(articleID),
	).WithContext(c.Request.Context()).Scan(&slug)

	if err := session.Query(
		`DELETE FROM news WHERE article_id = ?`, gocql.UUID(articleID),
	).WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article"})
		return
	}
	if slug != "" {
		session.Query(`DELETE FROM news_by_slug WHERE slug = ?`, slug).
			WithContext(c.Request.Context()).Exec()
	}

	services.RemoveFromIndex("news", articleID.String())

	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé"})
}

// slugify produit un slug URL à partir du titre
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, slug)
	return strings.Trim(slug, "-")
}
