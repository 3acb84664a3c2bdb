// Package account contiene las reglas de validación de cuentas: longitudes de
// nombre y dirección, forma del email y política de contraseñas. Son reglas
// puras de dominio, sin I/O, compartidas por registro, creación admin y cambio
// de contraseña.
package account

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jhoicas/Tiendas-api/internal/domain/entity"
)

// Límites de los campos de una cuenta.
const (
	NameMinLen    = 20
	NameMaxLen    = 60
	AddressMaxLen = 400
)

// ErrValidation agrupa errores de validación de cuenta. Los handlers lo mapean a 400.
var ErrValidation = errors.New("datos de cuenta inválidos")

var (
	// emailRe: forma mínima local@dominio.tld, sin validar el dominio.
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// passwordRe: 8-16 caracteres cualesquiera (espacios incluidos); mayúscula
	// y caracter especial se exigen aparte.
	passwordRe = regexp.MustCompile(`^.{8,16}$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*]`)
)

// ValidateName exige entre 20 y 60 caracteres.
func ValidateName(name string) error {
	if len(name) < NameMinLen || len(name) > NameMaxLen {
		return fmt.Errorf("%w: name debe tener entre %d y %d caracteres", ErrValidation, NameMinLen, NameMaxLen)
	}
	return nil
}

// ValidateAddress exige máximo 400 caracteres y no vacío.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("%w: address es requerido", ErrValidation)
	}
	if len(address) > AddressMaxLen {
		return fmt.Errorf("%w: address máximo %d caracteres", ErrValidation, AddressMaxLen)
	}
	return nil
}

// ValidateEmail exige forma local@dominio.tld.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: email inválido", ErrValidation)
	}
	return nil
}

// ValidatePassword exige 8-16 caracteres, al menos una mayúscula y al menos
// un caracter especial (!@#$%^&*).
func ValidatePassword(password string) error {
	if !passwordRe.MatchString(password) || !upperRe.MatchString(password) || !specialRe.MatchString(password) {
		return fmt.Errorf("%w: password debe tener 8-16 caracteres, una mayúscula y un caracter especial", ErrValidation)
	}
	return nil
}

// ValidateRole exige un rol del conjunto cerrado {user, owner, admin}.
func ValidateRole(role string) error {
	if !entity.ValidRole(role) {
		return fmt.Errorf("%w: role debe ser user, owner o admin", ErrValidation)
	}
	return nil
}

// ValidateNew valida todos los campos de una cuenta nueva y reporta el primer
// campo que falla, en el orden name, address, password, email.
func ValidateNew(name, email, password, address string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateAddress(address); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateEmail(email)
}
