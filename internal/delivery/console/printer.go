package console

import (
	"fmt"
	"io"
	"iter"

	"clinic-registry/internal/domain/entity"
)

// Printer writes the plain-text reports for professionals and appointments.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintProfessionalInfo writes the header, identity, variant details and service scope.
func (p *Printer) PrintProfessionalInfo(professional *entity.HealthProfessional) {
	fmt.Fprintf(p.out, "=== %s Information ===\n", professional.Title())
	fmt.Fprintf(p.out, "ID: %d | Name: %s\n", professional.ID(), professional.Name())
	fmt.Fprintln(p.out, professional.Details())
	fmt.Fprintln(p.out, professional.ServiceScope())
}

func (p *Printer) PrintAppointmentInfo(appointment *entity.Appointment) {
	fmt.Fprintln(p.out, "=== Appointment Details ===")
	fmt.Fprintf(p.out, "Patient: %s | Mobile: %s\n", appointment.PatientName(), appointment.PatientMobile())
	fmt.Fprintf(p.out, "Appointment Time: %s | Assigned Doctor:\n", appointment.TimeSlot())
	p.PrintProfessionalInfo(appointment.Doctor())
	fmt.Fprintln(p.out, "=================")
}

func (p *Printer) PrintAppointments(appointments iter.Seq[*entity.Appointment]) {
	empty := true
	for appointment := range appointments {
		empty = false
		p.PrintAppointmentInfo(appointment)
	}
	if empty {
		fmt.Fprintln(p.out, "No appointments found in the system.")
	}
}

func (p *Printer) PrintCreated(appointment *entity.Appointment) {
	fmt.Fprintf(p.out, "Appointment created successfully for: %s\n", appointment.PatientName())
}

func (p *Printer) PrintCancelled(mobile string, removed bool) {
	if removed {
		fmt.Fprintf(p.out, "Appointment canceled successfully (mobile: %s)\n", mobile)
		return
	}
	fmt.Fprintf(p.out, "No appointment found with mobile number: %s\n", mobile)
}

func (p *Printer) PrintError(operation string, err error) {
	fmt.Fprintf(p.out, "%s failed: %v\n", operation, err)
}
