package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/cartabinaria/auth/pkg/httputil"
	"github.com/kataras/muxie"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slog"

	"github.com/cartabinaria/lighter/api"
	"github.com/cartabinaria/lighter/models"
	"github.com/cartabinaria/lighter/util"
)

type Config struct {
	Listen     string   `toml:"listen"`
	ClientURLs []string `toml:"client_urls"`

	DbURI string `toml:"db_uri" required:"true"`
}

var (
	// Default config values
	config = Config{
		Listen: "0.0.0.0:3001",
	}
)

// @title			Lighter API
// @version		1.0
// @description	Question/answer knowledge-sharing backend
// @license.name	AGPL-3.0
// @license.url	https://www.gnu.org/licenses/agpl-3.0.en.html
// @BasePath		/
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: lighter <config-file>")
		os.Exit(1)
	}
	err := loadConfig(os.Args[1])
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	err = util.ConnectDb(config.DbURI)
	if err != nil {
		slog.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	db := util.GetDb()
	err = db.AutoMigrate(&models.Question{}, &models.Answer{}, &models.Vote{})
	if err != nil {
		slog.Error("AutoMigrate failed", "err", err)
		os.Exit(1)
	}

	mux := muxie.NewMux()
	mux.Use(util.NewLoggerMiddleware, httputil.NewCorsMiddleware(config.ClientURLs, true, mux))

	mux.Handle("/questions", muxie.Methods().
		Handle("GET", http.HandlerFunc(api.ListQuestionsHandler)).
		Handle("POST", http.HandlerFunc(api.CreateQuestionHandler)))
	mux.Handle("/questions/:id", muxie.Methods().
		Handle("GET", http.HandlerFunc(api.GetQuestionHandler)).
		Handle("PATCH", http.HandlerFunc(api.UpdateQuestionHandler)))
	mux.Handle("/questions/:id/answers", muxie.Methods().
		Handle("GET", http.HandlerFunc(api.GetQuestionAnswersHandler)).
		Handle("POST", http.HandlerFunc(api.PostAnswerHandler)))
	mux.HandleFunc("/questions/:id/comments", api.PostCommentHandler)
	mux.HandleFunc("/questions/:id/vote", api.PostVoteHandler)

	slog.Info("listening at", "address", config.Listen)
	err = http.ListenAndServe(config.Listen, mux)
	if err != nil {
		slog.Error("failed to serve", "err", err)
	}
}

func loadConfig(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	err = toml.NewDecoder(file).Decode(&config)
	if err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}

	return nil
}
