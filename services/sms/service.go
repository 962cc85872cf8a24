package sms

import (
	"fmt"
	"strings"
	"time"

	"farmconnect/models"
	"farmconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	usageMessage = "Invalid format.\nUse:\nBOOK TRACTOR YYYY-MM-DD LOCATION\nLABOR SKILL QTY DATE"

	helpMessage = `FarmConnect SMS Help:
BOOK <MACHINERY> <DATE> <LOCATION>
LABOR <SKILL> <QTY> <DATE>

Example:
BOOK tractor 2026-02-16 kalyani`

	serverErrorMessage = "Server error while processing booking."
)

// HandleSMSBooking parses one inbound message and executes the resulting
// command for the sender. Every outcome, including collaborator failures
// and panics, is returned as an Outcome; nothing propagates to the caller.
func (s *DefaultSMSBookingService) HandleSMSBooking(text, phoneNumber string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("HandleSMSBooking: recovered from panic",
				zap.Any("panic", r), zap.String("phone", phoneNumber))
			out = Outcome{Success: false, Message: serverErrorMessage}
		}
	}()

	cmd := ParseCommand(text)
	if cmd == nil {
		return Outcome{Success: false, Message: usageMessage}
	}

	switch cmd.Kind {
	case CommandHelp:
		return Outcome{Success: true, Message: helpMessage}
	case CommandMachineryBooking:
		return s.bookMachinery(cmd, phoneNumber)
	case CommandLabourRequest:
		return s.requestLabour(cmd)
	}

	return Outcome{Success: false, Message: usageMessage}
}

// bookMachinery runs the machinery workflow: validate the date, resolve
// or create the requester, find an available machine, and persist a
// one-day pending booking.
func (s *DefaultSMSBookingService) bookMachinery(cmd *Command, phoneNumber string) Outcome {
	// The parser only checks the token shape; reject non-calendar dates
	// like 9999-99-99 here, before touching any collaborator.
	startDate, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return Outcome{
			Success: false,
			Message: fmt.Sprintf("Invalid date %q. Use a real calendar date in YYYY-MM-DD format.", cmd.Date),
		}
	}

	requester, err := s.findOrCreateRequester(phoneNumber)
	if err != nil {
		utils.GetLogger().Error("bookMachinery: requester lookup/create failed",
			zap.Error(err), zap.String("phone", phoneNumber))
		return Outcome{Success: false, Message: serverErrorMessage}
	}

	machinery, err := s.Machinery.FindAvailableByName(cmd.Item)
	if err != nil {
		utils.GetLogger().Error("bookMachinery: machinery lookup failed",
			zap.Error(err), zap.String("item", cmd.Item))
		return Outcome{Success: false, Message: serverErrorMessage}
	}
	if machinery == nil {
		return Outcome{
			Success: false,
			Message: fmt.Sprintf("Machinery %q not available", cmd.Item),
		}
	}

	endDate := startDate.AddDate(0, 0, 1)

	booking := &models.Booking{
		ID:          uuid.New().String(),
		CustomerID:  requester.ID,
		MachineryID: machinery.ID,
		Items: []models.BookingItem{{
			ProductID: machinery.ID,
			Quantity:  1,
			Price:     machinery.Price,
		}},
		TotalAmount:     machinery.Price,
		StartDate:       startDate,
		EndDate:         endDate,
		Duration:        1,
		DeliveryAddress: models.DeliveryAddress{City: cmd.Location},
		Status:          "pending",
		PaymentStatus:   "pending",
	}

	if err := s.Bookings.Create(booking); err != nil {
		utils.GetLogger().Error("bookMachinery: booking create failed",
			zap.Error(err), zap.String("machinery_id", machinery.ID))
		return Outcome{Success: false, Message: serverErrorMessage}
	}

	message := fmt.Sprintf(`✅ Booking received!
Machinery: %s
Date: %s
Location: %s
Booking ID: %s
Status: Pending confirmation`, machinery.Name, cmd.Date, cmd.Location, booking.ID)

	return Outcome{Success: true, Message: message, BookingID: booking.ID}
}

// requestLabour validates labour availability for the requested skill and
// acknowledges with a generated request id. No booking record is
// persisted; confirmation happens in the main workflow.
func (s *DefaultSMSBookingService) requestLabour(cmd *Command) Outcome {
	if cmd.Quantity < 1 {
		return Outcome{
			Success: false,
			Message: "Invalid quantity. Use a whole number, e.g. LABOR mason 5 2026-02-16",
		}
	}

	labour, err := s.Labour.FindAvailableBySkill(cmd.Skill)
	if err != nil {
		utils.GetLogger().Error("requestLabour: labour lookup failed",
			zap.Error(err), zap.String("skill", cmd.Skill))
		return Outcome{Success: false, Message: serverErrorMessage}
	}
	if labour == nil {
		return Outcome{
			Success: false,
			Message: fmt.Sprintf("No labour available for skill %q", cmd.Skill),
		}
	}

	requestID := uuid.New().String()

	message := fmt.Sprintf(`✅ Labour request received!
Skill: %s
Quantity: %d
Date: %s
Status: Pending confirmation`, cmd.Skill, cmd.Quantity, cmd.Date)

	return Outcome{Success: true, Message: message, BookingID: requestID}
}

// findOrCreateRequester resolves the sender to a requester record,
// creating a placeholder record on first contact. The derived email is
// non-routable and the password marker disables interactive login; the
// SMS channel never authenticates beyond the phone number itself.
func (s *DefaultSMSBookingService) findOrCreateRequester(phoneNumber string) (*models.Requester, error) {
	requester, err := s.Requesters.GetByPhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	if requester != nil {
		return requester, nil
	}

	requester = &models.Requester{
		ID:          uuid.New().String(),
		PhoneNumber: phoneNumber,
		Name:        "SMS User",
		Email:       fmt.Sprintf("sms_%s@farmconnect.local", strings.TrimPrefix(phoneNumber, "+")),
		Password:    "sms-disabled",
		Role:        "customer",
	}
	if err := s.Requesters.Create(requester); err != nil {
		return nil, err
	}
	return requester, nil
}
