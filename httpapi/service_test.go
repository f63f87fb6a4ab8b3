package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/calcwork/chunkkernel/httpapi"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(ServiceTestSuite))

type ServiceTestSuite struct {
	svc *httpapi.Service
}

func (s *ServiceTestSuite) SetUpTest(c *gc.C) {
	var err error
	s.svc, err = httpapi.NewService(httpapi.Config{ListenAddr: ":0"})
	c.Assert(err, gc.IsNil)
}

func (s *ServiceTestSuite) TestConfigValidation(c *gc.C) {
	_, err := httpapi.NewService(httpapi.Config{})
	c.Assert(err, gc.ErrorMatches, "(?ms).*listen address has not been specified.*")
}

func (s *ServiceTestSuite) TestElementwiseSquare(c *gc.C) {
	res := s.post(c, "/square", "[-1, 2, 3]")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "[1,4,9]")
}

func (s *ServiceTestSuite) TestElementwiseSquareWithEmptySequence(c *gc.C) {
	res := s.post(c, "/square", "[]")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "[]")
}

func (s *ServiceTestSuite) TestRangeSumOfSquares(c *gc.C) {
	res := s.post(c, "/range-sum-squares", `{"start": 0, "end": 4}`)
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "14")
}

func (s *ServiceTestSuite) TestRangeSumOfSquaresWithInvertedRange(c *gc.C) {
	res := s.post(c, "/range-sum-squares", `{"start": 9, "end": 3}`)
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "0")
}

func (s *ServiceTestSuite) TestSum(c *gc.C) {
	res := s.post(c, "/sum", "[1, 2, 3]")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "6")
}

func (s *ServiceTestSuite) TestAverage(c *gc.C) {
	res := s.post(c, "/average", "[2, 4, 6]")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "4")
}

func (s *ServiceTestSuite) TestAverageWithEmptySequence(c *gc.C) {
	res := s.post(c, "/average", "[]")
	c.Assert(res.Code, gc.Equals, http.StatusOK)
	c.Assert(strings.TrimSpace(res.Body.String()), gc.Equals, "0", gc.Commentf("empty sequence must average to zero, not NaN"))
}

func (s *ServiceTestSuite) TestMalformedPayloads(c *gc.C) {
	specs := []struct {
		descr    string
		endpoint string
		body     string
	}{
		{descr: "non-numeric sequence entry", endpoint: "/square", body: `[1, "two"]`},
		{descr: "object instead of sequence", endpoint: "/sum", body: `{"values": [1]}`},
		{descr: "missing range end", endpoint: "/range-sum-squares", body: `{"start": 3}`},
		{descr: "unknown range field", endpoint: "/range-sum-squares", body: `{"start": 3, "end": 9, "step": 1}`},
		{descr: "empty body", endpoint: "/average", body: ""},
	}

	for _, spec := range specs {
		res := s.post(c, spec.endpoint, spec.body)
		c.Assert(res.Code, gc.Equals, http.StatusBadRequest, gc.Commentf("payload: %s", spec.descr))
	}
}

func (s *ServiceTestSuite) TestHealthEndpoint(c *gc.C) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	res := httptest.NewRecorder()
	s.svc.ServeHTTP(res, req)
	c.Assert(res.Code, gc.Equals, http.StatusOK)
}

func (s *ServiceTestSuite) TestMetricsEndpoint(c *gc.C) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	res := httptest.NewRecorder()
	s.svc.ServeHTTP(res, req)
	c.Assert(res.Code, gc.Equals, http.StatusOK)
}

func (s *ServiceTestSuite) post(c *gc.C, endpoint, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", endpoint, strings.NewReader(body))
	res := httptest.NewRecorder()
	s.svc.ServeHTTP(res, req)
	return res
}
