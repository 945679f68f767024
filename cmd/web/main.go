package main

import (
	"database/sql"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/form/v4"
	_ "github.com/go-sql-driver/mysql"

	"github.com/efuller/md-forms/internal/config"
	"github.com/efuller/md-forms/internal/models"
)

const (
	IdleTimeout  = time.Minute
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

type application struct {
	debug          bool
	errorLog       *log.Logger
	infoLog        *log.Logger
	accounts       models.AccountModelInterface
	submissions    models.SubmissionModelInterface
	catalog        models.CatalogModelInterface
	templateCache  map[string]*template.Template
	formDecoder    *form.Decoder
	sessionManager *scs.SessionManager
}

func main() {
	// Leveled loggers: informational messages to stdout, errors with file and line to stderr.
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	// Read ./.env (when present) and the environment into a Config.
	cfg, err := config.Load()
	if err != nil {
		errorLog.Fatal(err)
	}

	// Flags override the environment.
	addr := flag.String("addr", cfg.Addr, "HTTP network address")
	dsn := flag.String("dsn", cfg.DSN, "MySQL data source name")
	debug := flag.Bool("debug", cfg.Debug, "Enable debug mode in the browser")
	runMigrations := flag.Bool("migrate", cfg.Migrate, "Apply database migrations at start-up")

	flag.Parse()

	db, err := openDB(*dsn)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			errorLog.Fatal(err)
		}
	}(db)

	// Create or upgrade the sessions, accounts and submissions tables before serving.
	if *runMigrations {
		if err := models.Migrate(db); err != nil {
			errorLog.Fatal(err)
		}
		infoLog.Print("Database migrations applied")
	}

	templateCache, err := newTemplateCache()
	if err != nil {
		errorLog.Fatal(err)
	}

	catalog, err := models.NewCatalogModel()
	if err != nil {
		errorLog.Fatal(err)
	}

	formDecoder := form.NewDecoder()

	// Sessions live in the MySQL sessions table and expire after the configured lifetime.
	sessionManager := scs.New()
	sessionManager.Store = mysqlstore.New(db)
	sessionManager.Lifetime = cfg.SessionLifetime

	app := &application{
		debug:          *debug,
		errorLog:       errorLog,
		infoLog:        infoLog,
		accounts:       &models.AccountModel{DB: db},
		submissions:    &models.SubmissionModel{DB: db},
		catalog:        catalog,
		templateCache:  templateCache,
		formDecoder:    formDecoder,
		sessionManager: sessionManager,
	}

	// Route the server's own errors through errorLog and set timeouts against slow clients.
	srv := &http.Server{
		Addr:         *addr,
		Handler:      app.routes(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
		ErrorLog:     errorLog,
	}

	infoLog.Printf("Starting server on %s", *addr)
	errorLog.Fatal(srv.ListenAndServe())
}

// openDB wraps sql.Open and returns a sql.DB connection pool for a given data source name
func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("database pool initialization: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return db, nil
}
