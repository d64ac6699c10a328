package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

var (
	// upload guard checked before any decode work
	maxUploadSize = int64(5 * 1024 * 1024)
)

/* =======================================================================
   WebP config (ENV-driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // resize bound (keep aspect)
	MaxH    int
	Quality float32 // lossy encode quality
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

/* =======================================================================
   Decode (jpeg/png/webp) from []byte with MIME sniff
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("unsupported format: %s / %s", ct, ext)
		}
	}
	return img, err
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	if opt.MaxW > 0 || opt.MaxH > 0 {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.CatmullRom)
	}
	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS client + public URL
======================================================================= */

func newBucket() (*oss.Bucket, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	secret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || secret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS is not configured")
	}
	client, err := oss.New(endpoint, keyID, secret)
	if err != nil {
		return nil, err
	}
	return client.Bucket(bucketName)
}

func publicURL(objectKey string) string {
	base := strings.TrimRight(getEnv("OSS_PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", getEnv("OSS_BUCKET"), getEnv("OSS_ENDPOINT"))
	}
	return base + "/" + objectKey
}

// UploadImageWebP reads a multipart image, re-encodes it as webp within the
// configured bounds and puts it under <folder>/<uuid>.webp. Returns the public URL.
func UploadImageWebP(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds %dMB limit", maxUploadSize/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("cannot read uploaded file: %w", err)
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return "", fmt.Errorf("cannot decode image: %w", err)
	}

	out, err := encodeToWebP(img, defaultWebPOptionsFromEnv())
	if err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}

	bucket, err := newBucket()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", strings.Trim(folder, "/"), uuid.NewString())
	start := time.Now()
	if err := bucket.PutObject(key, bytes.NewReader(out), oss.ContentType("image/webp")); err != nil {
		return "", fmt.Errorf("oss put failed: %w", err)
	}
	log.Printf("[OSS] put %s (%dKB) in %s", key, len(out)/1024, time.Since(start))

	return publicURL(key), nil
}
