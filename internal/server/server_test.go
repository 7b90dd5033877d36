package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"revdisp/internal/domain"
	"revdisp/internal/params"
)

func postCalculate(t *testing.T, srv *Server, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/calculate")
	ctx.Request.SetBodyString(body)
	srv.HandleCalculation(ctx)
	return ctx
}

func TestHandleCalculation(t *testing.T) {
	srv := New(params.Default, nil)

	ctx := postCalculate(t, srv, `{
		"year": 2024,
		"household": {
			"householdType": "single",
			"primaryPerson": {"age": 35, "grossWorkIncome": 45000}
		}
	}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var summary domain.HouseholdSummary
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &summary))
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, "37342.75", summary.DisposableIncome.StringFixed(2))
}

func TestHandleCalculationUnsupportedYear(t *testing.T) {
	srv := New(params.Default, nil)

	ctx := postCalculate(t, srv, `{
		"year": 1999,
		"household": {
			"householdType": "single",
			"primaryPerson": {"age": 35, "grossWorkIncome": 45000}
		}
	}`)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "unsupported fiscal year")
}

func TestHandleCalculationInvalidHousehold(t *testing.T) {
	srv := New(params.Default, nil)

	ctx := postCalculate(t, srv, `{
		"year": 2024,
		"household": {
			"householdType": "couple",
			"primaryPerson": {"age": 35, "grossWorkIncome": 45000}
		}
	}`)

	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestHandleCalculationBadJSON(t *testing.T) {
	srv := New(params.Default, nil)
	ctx := postCalculate(t, srv, `{"year":`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleCalculationRequiresPost(t *testing.T) {
	srv := New(params.Default, nil)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/calculate")
	srv.HandleCalculation(ctx)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHandleYears(t *testing.T) {
	srv := New(params.Default, nil)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/years")
	srv.HandleYears(ctx)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var body map[string][]int
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, []int{2023, 2024, 2025}, body["years"])
}
