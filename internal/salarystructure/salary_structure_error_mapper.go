package salarystructure

import (
	"errors"
	"strings"

	salarystructureerrors "github.com/KinzixInfotech/edutemp-sub017/internal/salarystructure/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueNameConstraint = "uq_salary_structure_school_name"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrStructureNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueNameConstraint {
			return salarystructureerrors.ErrStructureNameExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueNameConstraint) {
		return salarystructureerrors.ErrStructureNameExists
	}

	return err
}
