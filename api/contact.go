package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aarnavnk17/AtlasWatch/schema"
	"github.com/aarnavnk17/AtlasWatch/store"
)

func (s *Server) listContacts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	contacts, err := s.mongoStore.ListContacts(email)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (s *Server) addContact(c *gin.Context) {
	var params struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Relationship string `json:"relationship"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" || params.Name == "" || params.Phone == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	contact, err := s.mongoStore.AddContact(schema.Contact{
		UserEmail:    params.Email,
		Name:         params.Name,
		Phone:        params.Phone,
		Relationship: params.Relationship,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": contact})
}

func (s *Server) updateContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid contact ID"))
		return
	}

	var params struct {
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Relationship string `json:"relationship"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	err = s.mongoStore.UpdateContact(id, params.Name, params.Phone, params.Relationship)
	if err == store.ErrContactNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorContactNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deleteContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("contactID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid contact ID"))
		return
	}

	if err := s.mongoStore.DeleteContact(id); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
