package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinigoal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, nil), server
}

func TestListEnrollmentsBareArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/enrollments", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"68a000000000000000000001","status":"pending"}]`))
	})

	enrollments, err := client.ListEnrollments()
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "68a000000000000000000001", enrollments[0].ID)
	assert.Equal(t, models.StatusPending, enrollments[0].Status)
}

func TestListEnrollmentsWrappedObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"enrollments":[{"_id":"68a000000000000000000002","status":"approved"}]}`))
	})

	enrollments, err := client.ListEnrollments()
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, models.StatusApproved, enrollments[0].Status)
}

func TestListEnrollmentsEmptyObjectReadsAsEmptyList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	enrollments, err := client.ListEnrollments()
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestHTTPErrorCarriesBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Enrollment not found"}`))
	})

	_, err := client.ListEnrollments()
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindHTTP, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Enrollment not found")
	assert.False(t, IsNetwork(err))
}

func TestNetworkErrorKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(server.URL, 2*time.Second, nil)
	server.Close()

	_, err := client.ListEnrollments()
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestUpdateEnrollmentStatusSendsStatusBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"success":true}`))
	})

	err := client.UpdateEnrollmentStatus("68a000000000000000000003", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, "/api/enrollments/68a000000000000000000003", gotPath)
	assert.Equal(t, map[string]string{"status": "approved"}, gotBody)
}

func TestCreateEnrollmentDeclaredFailureOn200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Already enrolled"}`))
	})

	err := client.CreateEnrollment(models.Enrollment{CourseID: "68a000000000000000000004"})
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Already enrolled", apiErr.Message)
}

func TestDeletedCourseGoneFromNextList(t *testing.T) {
	courses := map[string]models.Course{
		"68a000000000000000000010": {ID: "68a000000000000000000010", Title: "Basics"},
		"68a000000000000000000011": {ID: "68a000000000000000000011", Title: "Advanced"},
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			delete(courses, strings.TrimPrefix(r.URL.Path, "/api/courses/"))
			w.Write([]byte(`{"success":true}`))
		default:
			list := make([]models.Course, 0, len(courses))
			for _, course := range courses {
				list = append(list, course)
			}
			json.NewEncoder(w).Encode(list)
		}
	})

	before, err := client.ListCourses()
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, client.DeleteCourse("68a000000000000000000010"))

	after, err := client.ListCourses()
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "68a000000000000000000011", after[0].ID)
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	token := ""
	client := New(server.URL, 5*time.Second, func() string { return token })

	_, err := client.ListCourses()
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	token = "abc123"
	_, err = client.ListCourses()
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}
