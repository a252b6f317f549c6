package sequel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	base := func() *SqlBuilder {
		return New().Select("*").From("dbo.Test t")
	}

	t.Run("join", func(t *testing.T) {
		sql := base().Join("dbo.Employee e on e.Id = t.EmployeeId").ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN dbo.Employee e on e.Id = t.EmployeeId", sql)
	})

	t.Run("join on", func(t *testing.T) {
		sql := base().JoinOn("dbo.Employee e", "e.Id = t.EmployeeId").ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN dbo.Employee e ON e.Id = t.EmployeeId", sql)
	})

	t.Run("join as", func(t *testing.T) {
		sql := base().JoinAs("dbo.Employee", "e", "e.Id = t.EmployeeId").ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN dbo.Employee AS e ON e.Id = t.EmployeeId", sql)
	})

	t.Run("join subquery", func(t *testing.T) {
		sub := New().Select("*").From("dbo.Employee")
		sql := base().JoinSub(sub, "e", "e.Id = t.EmployeeId").ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN (SELECT * FROM dbo.Employee) AS e ON e.Id = t.EmployeeId", sql)
	})

	t.Run("left joins", func(t *testing.T) {
		sub := New().Select("*").From("dbo.Employee")
		assert.Equal(t, "SELECT * FROM dbo.Test t LEFT JOIN dbo.Employee e on e.Id = t.EmployeeId",
			base().LeftJoin("dbo.Employee e on e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t LEFT JOIN dbo.Employee e ON e.Id = t.EmployeeId",
			base().LeftJoinOn("dbo.Employee e", "e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t LEFT JOIN dbo.Employee AS e ON e.Id = t.EmployeeId",
			base().LeftJoinAs("dbo.Employee", "e", "e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t LEFT JOIN (SELECT * FROM dbo.Employee) AS e ON e.Id = t.EmployeeId",
			base().LeftJoinSub(sub, "e", "e.Id = t.EmployeeId").ToSql())
	})

	t.Run("right joins", func(t *testing.T) {
		sub := New().Select("*").From("dbo.Employee")
		assert.Equal(t, "SELECT * FROM dbo.Test t RIGHT JOIN dbo.Employee e on e.Id = t.EmployeeId",
			base().RightJoin("dbo.Employee e on e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t RIGHT JOIN dbo.Employee e ON e.Id = t.EmployeeId",
			base().RightJoinOn("dbo.Employee e", "e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t RIGHT JOIN dbo.Employee AS e ON e.Id = t.EmployeeId",
			base().RightJoinAs("dbo.Employee", "e", "e.Id = t.EmployeeId").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t RIGHT JOIN (SELECT * FROM dbo.Employee) AS e ON e.Id = t.EmployeeId",
			base().RightJoinSub(sub, "e", "e.Id = t.EmployeeId").ToSql())
	})

	t.Run("cross joins", func(t *testing.T) {
		sub := New().Select("*").From("dbo.Employee")
		assert.Equal(t, "SELECT * FROM dbo.Test t CROSS JOIN dbo.Employee", base().CrossJoin("dbo.Employee").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t CROSS JOIN dbo.Employee AS e", base().CrossJoinAs("dbo.Employee", "e").ToSql())
		assert.Equal(t, "SELECT * FROM dbo.Test t CROSS JOIN (SELECT * FROM dbo.Employee) AS e", base().CrossJoinSub(sub, "e").ToSql())
	})

	t.Run("mixed joins keep call order", func(t *testing.T) {
		sql := base().
			Join("dbo.Employee e on e.Id = t.EmployeeId").
			LeftJoin("dbo.Manager m on m.Id = e.ManagerId").
			RightJoin("dbo.Dept d on d.Id = e.DeptId").
			ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN dbo.Employee e on e.Id = t.EmployeeId LEFT JOIN dbo.Manager m on m.Id = e.ManagerId RIGHT JOIN dbo.Dept d on d.Id = e.DeptId", sql)
	})

	t.Run("joins render before where", func(t *testing.T) {
		sql := base().Where("e.Id = 1").Join("dbo.Employee e on e.Id = t.EmployeeId").ToSql()
		assert.Equal(t, "SELECT * FROM dbo.Test t INNER JOIN dbo.Employee e on e.Id = t.EmployeeId WHERE e.Id = 1", sql)
	})
}
