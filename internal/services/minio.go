package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"academie_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// SignedURLDuration — durée de validité des URLs signées
const SignedURLDuration = 1 * time.Hour

// UploadFile stocke un fichier dans le bucket sous prefix/ et retourne
// le chemin objet (pas une URL : la résolution se fait à la lecture)
func UploadFile(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Nom unique pour éviter les collisions
	objectName := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(file.Filename))

	bucket := os.Getenv("MINIO_BUCKET")
	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// GenerateSignedURL génère une URL signée avec expiration pour un objet du bucket
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, objectPath, duration, url.Values{})
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// ResolveFileURL est la source de vérité unique pour transformer une valeur
// stockée (chemin objet ou URL complète) en URL affichable :
//  1. URL complète pointant vers notre MinIO → on extrait la clé et on signe
//  2. URL complète externe (ex: vidéo hébergée ailleurs) → renvoyée telle quelle
//  3. sinon c'est une clé objet → URL signée
func ResolveFileURL(ctx context.Context, stored string) (string, error) {
	if stored == "" {
		return "", fmt.Errorf("chemin vide")
	}

	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		key, ours := objectKeyFromURL(stored)
		if !ours {
			return stored, nil
		}
		return GenerateSignedURL(ctx, key, SignedURLDuration)
	}

	return GenerateSignedURL(ctx, strings.TrimPrefix(stored, "/"), SignedURLDuration)
}

// objectKeyFromURL extrait la clé objet si l'URL pointe vers notre bucket
func objectKeyFromURL(fullURL string) (string, bool) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", false
	}

	endpoint := os.Getenv("MINIO_ENDPOINT")
	bucket := os.Getenv("MINIO_BUCKET")
	if endpoint == "" || u.Host != endpoint {
		return "", false
	}

	key := strings.TrimPrefix(u.Path, "/"+bucket+"/")
	if key == u.Path || key == "" {
		return "", false
	}
	return key, true
}

// ResolveFileURLs résout une liste de chemins, en ignorant ceux qui échouent
func ResolveFileURLs(ctx context.Context, stored []string) []string {
	urls := make([]string, 0, len(stored))
	for _, s := range stored {
		if resolved, err := ResolveFileURL(ctx, s); err == nil {
			urls = append(urls, resolved)
		}
	}
	return urls
}
