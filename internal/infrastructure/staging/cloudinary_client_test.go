package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"porosemi/internal/domain/service"
)

func TestTransformationImage(t *testing.T) {
	got := transformation(service.TransformSpec{Format: "webp", Quality: 85})
	assert.Equal(t, "f_webp,q_85", got)
}

func TestTransformationDocumentFirstPage(t *testing.T) {
	got := transformation(service.TransformSpec{
		Format:    "webp",
		Quality:   70,
		Page:      1,
		MaxWidth:  800,
		MaxHeight: 1000,
	})
	assert.Equal(t, "pg_1,c_limit,w_800,h_1000,f_webp,q_70", got)
}

func TestTransformationEmptySpec(t *testing.T) {
	assert.Equal(t, "", transformation(service.TransformSpec{}))
}
