package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-admin/internal/dto"
	"restaurant-admin/internal/services"
	"restaurant-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestInstructionHandler(t *testing.T) {
	suite.Run(t, new(InstructionHandlerSuite))
}

type InstructionHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	instructionService *service_mocks.MockInstructionServiceInterface
	adminLogger        *service_mocks.MockAdminLoggerInterface
	handler            *InstructionHandler
	e                  *echo.Echo
}

func (s *InstructionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.instructionService = service_mocks.NewMockInstructionServiceInterface(s.ctrl)
	s.adminLogger = service_mocks.NewMockAdminLoggerInterface(s.ctrl)
	s.handler = NewInstructionHandler(s.instructionService, s.adminLogger)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *InstructionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InstructionHandlerSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/Instruction", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Require().NoError(s.handler.CreateInstruction(s.e.NewContext(req, rec)))
	return rec
}

func (s *InstructionHandlerSuite) get(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/Instruction?"+query, nil)
	rec := httptest.NewRecorder()
	s.Require().NoError(s.handler.LoadInstructions(s.e.NewContext(req, rec)))
	return rec
}

func (s *InstructionHandlerSuite) TestCreateInstruction_Success() {
	s.instructionService.EXPECT().
		AddInstruction(gomock.Any(), &dto.ReqInput{CustomerID: 4, Instruction: "Ring the bell twice", CreatedBy: "operator"}).
		Return(&dto.InstructionSummary{ID: 1, CustomerID: 4, Instruction: "Ring the bell twice", CreatedAt: time.Now()}, nil).
		Times(1)

	rec := s.post(`{"customerId":4,"instruction":"Ring the bell twice","createdBy":"operator"}`)

	s.Equal(http.StatusOK, rec.Code)
	env := decodeEnvelope(s.T(), rec)
	s.Equal(dto.StatusSuccess, env.Status)
	s.Contains(string(env.Data), `"instruction":"Ring the bell twice"`)
}

func (s *InstructionHandlerSuite) TestCreateInstruction_ValidationFailure() {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"customerId":`},
		{name: "missing customer", body: `{"instruction":"hello"}`},
		{name: "missing text", body: `{"customerId":4}`},
		{name: "wrong type", body: `{"customerId":"four","instruction":"hello"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.adminLogger.EXPECT().LogValidationFailure(gomock.Any(), "create_instruction", gomock.Any()).Times(1)

			rec := s.post(tt.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("PAYLOAD_001", decodeEnvelope(s.T(), rec).Code)
		})
	}
}

func (s *InstructionHandlerSuite) TestCreateInstruction_UnknownCustomer() {
	s.instructionService.EXPECT().AddInstruction(gomock.Any(), gomock.Any()).Return(nil, services.ErrCustomerNotFound).Times(1)

	rec := s.post(`{"customerId":404,"instruction":"hello"}`)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CUSTOMER_001", decodeEnvelope(s.T(), rec).Code)
}

func (s *InstructionHandlerSuite) TestCreateInstruction_CollaboratorFailure() {
	s.instructionService.EXPECT().AddInstruction(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed")).Times(1)

	rec := s.post(`{"customerId":4,"instruction":"hello"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("insert failed", decodeEnvelope(s.T(), rec).Message)
}

func (s *InstructionHandlerSuite) TestLoadInstructions_Ordered() {
	now := time.Now()
	s.instructionService.EXPECT().LoadInstructions(gomock.Any(), int64(4)).Return([]dto.InstructionSummary{
		{ID: 1, CustomerID: 4, Instruction: "first", CreatedAt: now},
		{ID: 2, CustomerID: 4, Instruction: "second", CreatedAt: now.Add(time.Second)},
	}, nil).Times(1)

	rec := s.get("customerid=4")

	s.Equal(http.StatusOK, rec.Code)
	var instructions []dto.InstructionSummary
	s.Require().NoError(json.Unmarshal(decodeEnvelope(s.T(), rec).Data, &instructions))
	s.Require().Len(instructions, 2)
	s.Equal("first", instructions[0].Instruction)
	s.Equal("second", instructions[1].Instruction)
}

func (s *InstructionHandlerSuite) TestLoadInstructions_Empty() {
	s.instructionService.EXPECT().LoadInstructions(gomock.Any(), int64(4)).Return([]dto.InstructionSummary{}, nil).Times(1)

	rec := s.get("customerid=4")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, string(decodeEnvelope(s.T(), rec).Data))
}

func (s *InstructionHandlerSuite) TestLoadInstructions_InvalidCustomerID() {
	for _, query := range []string{"", "customerid=", "customerid=abc", "customerid=0"} {
		s.adminLogger.EXPECT().LogValidationFailure(gomock.Any(), "load_instructions", gomock.Any()).Times(1)

		rec := s.get(query)

		s.Equal(http.StatusBadRequest, rec.Code, query)
	}
}
