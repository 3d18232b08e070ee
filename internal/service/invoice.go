package service

import "fmt"

// NextInvoiceNumber 根据当前计数器生成下一个发票号。
// 纯函数，不做任何持久化；调用方负责在同一事务内写回新计数器。
func NextInvoiceNumber(prefix string, counter int) (string, int) {
	next := counter + 1
	return fmt.Sprintf("%s-%06d", prefix, next), next
}
