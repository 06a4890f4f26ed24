package pagination_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/pagination"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const (
	employeeA = `{"id":1,"firstName":"Asha","lastName":"Rao","email":"asha@example.com","phoneNumber":"+919876543210","department":"HR"}`
	employeeB = `{"id":2,"firstName":"Ben","lastName":"Cole","email":"ben@example.com","phoneNumber":"+14155551234"}`
	employeeC = `{"id":"emp-3","firstName":"Chen","lastName":"Li","email":"chen@example.com","phoneNumber":"+8612345678"}`
)

var (
	wantA = models.Employee{ID: "1", FirstName: "Asha", LastName: "Rao", Email: "asha@example.com",
		PhoneNumber: "+919876543210", Department: "HR"}
	wantB = models.Employee{ID: "2", FirstName: "Ben", LastName: "Cole", Email: "ben@example.com",
		PhoneNumber: "+14155551234"}
	wantC = models.Employee{ID: "emp-3", FirstName: "Chen", LastName: "Li", Email: "chen@example.com",
		PhoneNumber: "+8612345678"}
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		fallback int
		want     models.PageResult
	}{
		{
			name:     "flat envelope computes pages from elements",
			raw:      `{"content":[` + employeeA + `,` + employeeB + `],"totalElements":45,"size":20}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA, wantB}, TotalPages: 3},
		},
		{
			name:     "bare array without metadata",
			raw:      `[` + employeeA + `,` + employeeB + `,` + employeeC + `]`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA, wantB, wantC}, TotalPages: 1},
		},
		{
			name:     "empty nested envelope keeps floor of one",
			raw:      `{"content":[],"page":{"totalElements":0,"size":20,"totalPages":0}}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 1},
		},
		{
			name:     "nested page metadata",
			raw:      `{"content":[` + employeeA + `],"page":{"totalElements":41,"size":10,"totalPages":5}}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 5},
		},
		{
			name:     "server claims more pages than elements imply",
			raw:      `{"content":[` + employeeA + `],"totalElements":1,"size":20,"totalPages":7}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 7},
		},
		{
			name:     "elements imply more pages than server claims",
			raw:      `{"content":[` + employeeA + `],"totalElements":100,"size":20,"totalPages":2}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 5},
		},
		{
			name:     "non positive top level size falls through to nested size",
			raw:      `{"content":[],"size":0,"totalElements":30,"page":{"size":10}}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 3},
		},
		{
			name:     "missing size uses fallback",
			raw:      `{"content":[],"totalElements":30}`,
			fallback: 7,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 5},
		},
		{
			name:     "string metadata is ignored",
			raw:      `{"content":[` + employeeA + `],"totalElements":"45","size":"20","totalPages":"9"}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 1},
		},
		{
			name:     "content that is not an array yields no items",
			raw:      `{"content":{"id":1},"totalElements":25}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 2},
		},
		{
			name:     "non object items are skipped",
			raw:      `[` + employeeA + `,42,"x",null]`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 1, Skipped: 3},
		},
		{
			name:     "undecodable items still count towards pages",
			raw:      `[` + employeeA + `,{"id":9,"firstName":"Dee","phoneNumber":5550100}]`,
			fallback: 1,
			want:     models.PageResult{Items: []models.Employee{wantA}, TotalPages: 2, Skipped: 1},
		},
		{
			name:     "huge server page count saturates",
			raw:      `{"content":[],"totalElements":0,"size":20,"totalPages":1e20}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: math.MaxInt},
		},
		{
			name:     "huge element count saturates",
			raw:      `{"content":[],"totalElements":1e300,"size":1}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: math.MaxInt},
		},
		{
			name:     "negative server page count is ignored",
			raw:      `{"content":[],"totalElements":30,"size":10,"totalPages":-4}`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 3},
		},
		{
			name:     "invalid json",
			raw:      `{"content":[`,
			fallback: 20,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 1},
		},
		{
			name:     "scalar body",
			raw:      `"nope"`,
			fallback: 0,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 1},
		},
		{
			name:     "zero fallback uses default page size",
			raw:      `{"content":[],"totalElements":41}`,
			fallback: 0,
			want:     models.PageResult{Items: []models.Employee{}, TotalPages: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pagination.Normalize([]byte(tt.raw), tt.fallback)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagination.ShapeArray, pagination.Classify([]byte(`[]`)).Shape)
	assert.Equal(t, pagination.ShapeEnvelope, pagination.Classify([]byte(` {"content":[]}`)).Shape)
	assert.Equal(t, pagination.ShapeUnknown, pagination.Classify([]byte(`12`)).Shape)
	assert.Equal(t, pagination.ShapeUnknown, pagination.Classify([]byte(``)).Shape)
	assert.Equal(t, pagination.ShapeUnknown, pagination.Classify([]byte(`{broken`)).Shape)
	assert.Equal(t, "envelope", pagination.ShapeEnvelope.String())
}
