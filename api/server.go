package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aarnavnk17/AtlasWatch/crime"
	"github.com/aarnavnk17/AtlasWatch/external/geoinfo"
	"github.com/aarnavnk17/AtlasWatch/logmodule"
	"github.com/aarnavnk17/AtlasWatch/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.AtlasCore
	mongoStore store.MongoStore

	// Crime score resolver over the static reference table
	crimeResolver *crime.Resolver

	// Optional reverse geocoding client; nil when no maps key is
	// configured
	geoClient geoinfo.GeoInfo
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	crimeResolver *crime.Resolver,
	geoClient geoinfo.GeoInfo) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewAtlasStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		crimeResolver: crimeResolver,
		geoClient:     geoClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logmodule.Ginrus("API"))

	r.GET("/healthz", s.healthz)
	r.GET("/crime-stats", s.crimeStats)

	r.POST("/register", s.accountRegister)
	r.POST("/login", s.accountLogin)

	r.GET("/profile", s.getProfile)
	r.POST("/profile", s.saveProfile)

	r.GET("/contacts", s.listContacts)
	r.POST("/contacts", s.addContact)
	r.POST("/contacts/:contactID", s.updateContact)
	r.DELETE("/contacts/:contactID", s.deleteContact)

	r.POST("/location", s.reportLocation)
	r.GET("/location/latest", s.latestLocation)
	r.GET("/location/history", s.locationHistory)

	r.POST("/journey", s.startJourney)
	r.DELETE("/journey", s.endJourney)

	accountRoute := r.Group("/accounts")
	accountRoute.Use(s.authMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	adminRoute := r.Group("/admin")
	adminRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		adminRoute.GET("/users", s.adminUsers)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
