package bootstrap

import (
	"context"
	"fmt"

	"clinic-registry/internal/delivery/console"
	"clinic-registry/internal/domain/entity"
)

// CancelledSampleMobile is the booking the demo cancels.
const CancelledSampleMobile = "13800138000"

// SampleProfessionals returns the four doctors every run starts with.
func SampleProfessionals() ([]*entity.HealthProfessional, error) {
	gp1, err := entity.NewGeneralPractitioner(1, "Dr. Sarah Johnson", 8, "Community General Practice", true)
	if err != nil {
		return nil, err
	}
	gp2, err := entity.NewGeneralPractitioner(2, "Dr. Michael Chen", 5, "Family Medicine", false)
	if err != nil {
		return nil, err
	}
	pedia1, err := entity.NewPediatrician(3, "Dr. Emily Rodriguez", 6, "Pediatric Respiratory Medicine", 12)
	if err != nil {
		return nil, err
	}
	pedia2, err := entity.NewPediatrician(4, "Dr. David Kim", 4, "Pediatric Gastroenterology", 10)
	if err != nil {
		return nil, err
	}

	return []*entity.HealthProfessional{gp1, gp2, pedia1, pedia2}, nil
}

type sampleBooking struct {
	patientName string
	mobile      string
	timeSlot    string
	doctorID    int
}

var sampleBookings = []sampleBooking{
	{"Alex Taylor", "13800138000", "09:30", 1},
	{"Jamie Lee", "13900139000", "10:15", 1},
	{"Sam Wilson", "13700137000", "14:00", 3},
	{"Casey Zhang", "13600136000", "15:30", 3},
}

// RunDemo prints every professional, books the sample appointments, lists them,
// cancels one and lists again. Failures are reported and the run carries on.
func (app *App) RunDemo(ctx context.Context) {
	printer := console.NewPrinter(app.Out)

	fmt.Fprintln(app.Out, "===== Part 1: Health Professional Details =====")
	for _, professional := range app.Directory.List(ctx) {
		printer.PrintProfessionalInfo(professional)
		fmt.Fprintln(app.Out, "-----------------------------------")
	}

	fmt.Fprintln(app.Out, "\n===== Part 2: Appointment Management =====")
	for _, booking := range sampleBookings {
		doctor, err := app.Directory.Get(ctx, booking.doctorID)
		if err != nil {
			app.Log.Warnf("Skipping booking for %s: %+v", booking.patientName, err)
			printer.PrintError("Appointment operation", err)
			continue
		}

		appointment, err := app.Registry.CreateAppointment(ctx, booking.patientName, booking.mobile, booking.timeSlot, doctor)
		if err != nil {
			printer.PrintError("Appointment operation", err)
			continue
		}
		printer.PrintCreated(appointment)
	}

	fmt.Fprintln(app.Out, "\n[All Appointments After Creation]")
	printer.PrintAppointments(app.Registry.ListAppointments(ctx))

	removed, err := app.Registry.CancelAppointment(ctx, CancelledSampleMobile)
	if err != nil {
		printer.PrintError("Appointment operation", err)
	} else {
		printer.PrintCancelled(CancelledSampleMobile, removed)
	}

	fmt.Fprintln(app.Out, "\n[Appointments After Cancellation]")
	printer.PrintAppointments(app.Registry.ListAppointments(ctx))
}
