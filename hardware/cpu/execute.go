// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/logger"
)

// operand is the resolved address and the value read from it. handlers for
// read-modify-write instructions change the value and Step() writes it back
// to the address.
type operand struct {
	address uint16
	value   uint8
}

// Step executes the instruction for the opcode. The PC must point to the
// opcode when Step() is called and will point to the next instruction when it
// returns.
func (mc *CPU) Step(opcode uint8) error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// consume opcode
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn := mc.instructions[opcode]
	if defn == nil {
		return curated.Errorf(UnimplementedOpcode, opcode, mc.LastResult.Address, mc.String())
	}
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(mc.PC.Address()))
	case 3:
		mc.LastResult.InstructionData = cpubus.Read16(mc.mem, mc.PC.Address())
	}

	var op operand

	if defn.AddressingMode.HasAddress() {
		var err error
		op.address, err = mc.resolve(defn)
		if err != nil {
			return err
		}
		mc.LastResult.EffectiveAddress = op.address

		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			op.value = mc.mem.Read(op.address)
		}
	}

	// consume operand bytes. control transfer instructions will overwrite
	// the PC as required
	mc.PC.Add(uint16(defn.Bytes - 1))
	mc.LastResult.ByteCount = defn.Bytes

	var err error

	switch defn.Operator.Family() {
	case instructions.Arithmetic:
		err = mc.arithmetic(defn, &op)
	case instructions.Logical:
		err = mc.logical(defn, &op)
	case instructions.Shift:
		err = mc.shift(defn, &op)
	case instructions.Rotate:
		err = mc.rotate(defn, &op)
	case instructions.BitTest:
		err = mc.bitTest(defn, &op)
	case instructions.Branch:
		err = mc.branch(defn, &op)
	case instructions.Break:
		err = mc.brk(defn, &op)
	case instructions.Compare:
		err = mc.compare(defn, &op)
	case instructions.Crement:
		err = mc.crement(defn, &op)
	case instructions.Flag:
		err = mc.flag(defn, &op)
	case instructions.Jump:
		err = mc.jump(defn, &op)
	case instructions.Call:
		err = mc.call(defn, &op)
	case instructions.Return:
		err = mc.ret(defn, &op)
	case instructions.Load:
		err = mc.load(defn, &op)
	case instructions.Store:
		err = mc.store(defn, &op)
	case instructions.NoOperation:
		err = mc.nop(defn, &op)
	case instructions.Register:
		err = mc.register(defn, &op)
	case instructions.Stack:
		err = mc.stack(defn, &op)
	default:
		err = curated.Errorf(InvalidOperatorForHandler, defn.Operator.Family(), defn.Operator)
	}

	if err != nil {
		return err
	}

	if defn.Effect == instructions.RMW {
		mc.mem.Write(op.address, op.value)
	}

	mc.Cycles += mc.LastResult.Cycles
	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) arithmetic(defn *instructions.Definition, op *operand) error {
	var carry, overflow bool

	switch defn.Operator {
	case instructions.Adc:
		carry, overflow = mc.A.Add(op.value, mc.Status.Carry())
	case instructions.Sbc:
		carry, overflow = mc.A.Subtract(op.value, mc.Status.Carry())
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Arithmetic, defn.Operator)
	}

	mc.Status.SetCarry(carry)
	mc.Status.SetOverflow(overflow)
	mc.Status.SetZN(mc.A.Value())
	return nil
}

func (mc *CPU) logical(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.And:
		mc.A.AND(op.value)
	case instructions.Ora:
		mc.A.ORA(op.value)
	case instructions.Eor:
		mc.A.EOR(op.value)
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Logical, defn.Operator)
	}

	mc.Status.SetZN(mc.A.Value())
	return nil
}

// target returns the register that a shift or rotate operates on. for the
// accumulator addressing mode this is the A register, otherwise it is a
// scratch register loaded with the operand value.
func (mc *CPU) target(defn *instructions.Definition, op *operand) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	r := registers.NewRegister(op.value, "")
	return &r
}

func (mc *CPU) shift(defn *instructions.Definition, op *operand) error {
	r := mc.target(defn, op)

	var carry bool

	switch defn.Operator {
	case instructions.Asl:
		carry = r.ASL()
	case instructions.Lsr:
		carry = r.LSR()
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Shift, defn.Operator)
	}

	op.value = r.Value()
	mc.Status.SetCarry(carry)
	mc.Status.SetZN(r.Value())
	return nil
}

func (mc *CPU) rotate(defn *instructions.Definition, op *operand) error {
	r := mc.target(defn, op)

	var carry bool

	switch defn.Operator {
	case instructions.Rol:
		carry = r.ROL(mc.Status.Carry())
	case instructions.Ror:
		carry = r.ROR(mc.Status.Carry())
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Rotate, defn.Operator)
	}

	op.value = r.Value()
	mc.Status.SetCarry(carry)
	mc.Status.SetZN(r.Value())
	return nil
}

func (mc *CPU) bitTest(defn *instructions.Definition, op *operand) error {
	if defn.Operator != instructions.Bit {
		return curated.Errorf(InvalidOperatorForHandler, instructions.BitTest, defn.Operator)
	}

	// N and V come from the operand and not from the result of the AND
	r := registers.NewRegister(op.value, "")
	mc.Status.SetNegative(r.IsNegative())
	mc.Status.SetOverflow(r.IsBitV())

	r.AND(mc.A.Value())
	mc.Status.SetZero(r.IsZero())
	return nil
}

func (mc *CPU) branch(defn *instructions.Definition, op *operand) error {
	var success bool

	switch defn.Operator {
	case instructions.Bpl:
		success = !mc.Status.Negative()
	case instructions.Bmi:
		success = mc.Status.Negative()
	case instructions.Bvc:
		success = !mc.Status.Overflow()
	case instructions.Bvs:
		success = mc.Status.Overflow()
	case instructions.Bcc:
		success = !mc.Status.Carry()
	case instructions.Bcs:
		success = mc.Status.Carry()
	case instructions.Bne:
		success = !mc.Status.Zero()
	case instructions.Beq:
		success = mc.Status.Zero()
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Branch, defn.Operator)
	}

	if !success {
		return nil
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	// the branch is relative to the PC after the operand has been consumed
	if mc.PC.Branch(uint8(mc.LastResult.InstructionData)) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	return nil
}

func (mc *CPU) brk(defn *instructions.Definition, op *operand) error {
	if defn.Operator != instructions.Brk {
		return curated.Errorf(InvalidOperatorForHandler, instructions.Break, defn.Operator)
	}

	// the byte following BRK is padding and is skipped by the return address
	mc.PC.Add(1)
	mc.push16(mc.PC.Address())
	mc.push8(mc.Status.Value() | registers.Break | registers.Unused)
	mc.Status.SetInterruptDisable(true)

	// there is no interrupt controller. the IRQ vector is not followed and
	// the run loop is halted instead
	mc.Halted = true
	logger.Logf(logger.Allow, "cpu", "BRK at %#04x", mc.LastResult.Address)

	return nil
}

func (mc *CPU) compare(defn *instructions.Definition, op *operand) error {
	var r registers.Register

	switch defn.Operator {
	case instructions.Cmp:
		r = mc.A
	case instructions.Cpx:
		r = mc.X
	case instructions.Cpy:
		r = mc.Y
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Compare, defn.Operator)
	}

	carry, difference := r.Compare(op.value)
	mc.Status.SetCarry(carry)
	mc.Status.SetZN(difference)
	return nil
}

func (mc *CPU) crement(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.Inc:
		op.value++
	case instructions.Dec:
		op.value--
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Crement, defn.Operator)
	}

	mc.Status.SetZN(op.value)
	return nil
}

func (mc *CPU) flag(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.Clc:
		mc.Status.SetCarry(false)
	case instructions.Sec:
		mc.Status.SetCarry(true)
	case instructions.Cli:
		mc.Status.SetInterruptDisable(false)
	case instructions.Sei:
		mc.Status.SetInterruptDisable(true)
	case instructions.Clv:
		mc.Status.SetOverflow(false)
	case instructions.Cld:
		mc.Status.SetDecimal(false)
	case instructions.Sed:
		mc.Status.SetDecimal(true)
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Flag, defn.Operator)
	}
	return nil
}

func (mc *CPU) jump(defn *instructions.Definition, op *operand) error {
	if defn.Operator != instructions.Jmp {
		return curated.Errorf(InvalidOperatorForHandler, instructions.Jump, defn.Operator)
	}
	mc.PC.Load(op.address)
	return nil
}

func (mc *CPU) call(defn *instructions.Definition, op *operand) error {
	if defn.Operator != instructions.Jsr {
		return curated.Errorf(InvalidOperatorForHandler, instructions.Call, defn.Operator)
	}

	// the return address is the last byte of the JSR instruction
	mc.push16(mc.PC.Address() - 1)
	mc.PC.Load(op.address)
	return nil
}

func (mc *CPU) ret(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.Rts:
		mc.PC.Load(mc.pull16())
		mc.PC.Add(1)
	case instructions.Rti:
		mc.Status.Load(mc.pull8() &^ (registers.Break | registers.Unused))
		mc.PC.Load(mc.pull16())
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Return, defn.Operator)
	}
	return nil
}

func (mc *CPU) load(defn *instructions.Definition, op *operand) error {
	var r *registers.Register

	switch defn.Operator {
	case instructions.Lda:
		r = &mc.A
	case instructions.Ldx:
		r = &mc.X
	case instructions.Ldy:
		r = &mc.Y
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Load, defn.Operator)
	}

	r.Load(op.value)
	mc.Status.SetZN(r.Value())
	return nil
}

func (mc *CPU) store(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.Sta:
		mc.mem.Write(op.address, mc.A.Value())
	case instructions.Stx:
		mc.mem.Write(op.address, mc.X.Value())
	case instructions.Sty:
		mc.mem.Write(op.address, mc.Y.Value())
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Store, defn.Operator)
	}
	return nil
}

func (mc *CPU) nop(defn *instructions.Definition, op *operand) error {
	if defn.Operator != instructions.Nop {
		return curated.Errorf(InvalidOperatorForHandler, instructions.NoOperation, defn.Operator)
	}
	return nil
}

func (mc *CPU) register(defn *instructions.Definition, op *operand) error {
	var r *registers.Register

	switch defn.Operator {
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		r = &mc.X
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		r = &mc.A
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		r = &mc.Y
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		r = &mc.A
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		r = &mc.X
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		r = &mc.Y
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		r = &mc.X
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		r = &mc.Y
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Register, defn.Operator)
	}

	mc.Status.SetZN(r.Value())
	return nil
}

func (mc *CPU) stack(defn *instructions.Definition, op *operand) error {
	switch defn.Operator {
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Pha:
		mc.push8(mc.A.Value())
	case instructions.Pla:
		mc.A.Load(mc.pull8())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Php:
		mc.push8(mc.Status.Value() | registers.Break | registers.Unused)
	case instructions.Plp:
		// bits 4 and 5 do not exist in the status register
		mc.Status.Load(mc.pull8() &^ (registers.Break | registers.Unused))
	default:
		return curated.Errorf(InvalidOperatorForHandler, instructions.Stack, defn.Operator)
	}
	return nil
}
