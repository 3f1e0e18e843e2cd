package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/logger"
)

// ResourceHandler serves the list and form routes of one record kind.
// F is the form type bound from the request body.
type ResourceHandler[T any, F domain.Form[T]] struct {
	svc service.EntityService[T]
	now func() time.Time
}

func NewResourceHandler[T any, F domain.Form[T]](svc service.EntityService[T]) *ResourceHandler[T, F] {
	return &ResourceHandler[T, F]{svc: svc, now: time.Now}
}

func (h *ResourceHandler[T, F]) RegisterRoutes(router gin.IRoutes) {
	kind := string(h.svc.Kind())
	router.GET("/"+h.svc.Kind().Plural(), h.List)
	router.POST("/add_"+kind, h.Create)
	router.POST("/delete_"+kind+"/:id", h.Delete)
	router.POST("/modify_"+kind+"/:id", h.Modify)
}

func (h *ResourceHandler[T, F]) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.List: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list " + h.svc.Kind().Plural()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ResourceHandler[T, F]) Create(c *gin.Context) {
	rec, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.svc.Create(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + string(h.svc.Kind())})
		return
	}
	h.redirectToList(c)
}

// Modify overwrites every field of the record with the submitted form,
// including fields that did not change.
func (h *ResourceHandler[T, F]) Modify(c *gin.Context) {
	id, ok := h.resolve(c)
	if !ok {
		return
	}
	rec, ok := h.bind(c)
	if !ok {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, rec); err != nil {
		h.fail(c, "modify", err)
		return
	}
	h.redirectToList(c)
}

func (h *ResourceHandler[T, F]) Delete(c *gin.Context) {
	id, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.redirectToList(c)
}

// resolve parses the :id path parameter and checks that the record exists.
// A non-numeric id is treated like an absent one.
func (h *ResourceHandler[T, F]) resolve(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrRecordNotFound.Error()})
		return 0, false
	}
	if _, err := h.svc.Get(c.Request.Context(), uint(id)); err != nil {
		h.fail(c, "resolve", err)
		return 0, false
	}
	return uint(id), true
}

func (h *ResourceHandler[T, F]) bind(c *gin.Context) (*T, bool) {
	var form F
	err := c.ShouldBindWith(&form, binding.Form)
	if err == nil {
		err = checkNumbers(&form, c.Request.Form)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return nil, false
	}
	rec := new(T)
	form.Apply(rec, h.now())
	return rec, true
}

func (h *ResourceHandler[T, F]) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Hdl."+op+": service error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op + " " + string(h.svc.Kind())})
}

func (h *ResourceHandler[T, F]) redirectToList(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+h.svc.Kind().Plural())
}

// checkNumbers rejects numeric fields submitted with an empty value, which
// the binder reads as zero, and floats that bound to NaN or an infinity,
// which cannot be rendered back as JSON.
func checkNumbers(form any, values url.Values) error {
	v := reflect.Indirect(reflect.ValueOf(form))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if key == "" || key == "-" {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		switch typ.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			continue
		}
		if vs, ok := values[key]; ok && len(vs) > 0 && vs[0] == "" {
			return fmt.Errorf("field %q is empty", key)
		}
		fv := reflect.Indirect(v.Field(i))
		if !fv.IsValid() {
			continue
		}
		if k := fv.Kind(); k == reflect.Float32 || k == reflect.Float64 {
			if f := fv.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("field %q is not a finite number", key)
			}
		}
	}
	return nil
}
